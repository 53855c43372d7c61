package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mt5_bridge/internal/models"
)

// Брокеры переименовывают одни и те же инструменты своими суффиксами
// (EURUSD → EURUSDm у одних, EURUSD.pro у других). Порядок перебора
// фиксирован, первый найденный выигрывает.
var brokerSuffixes = []string{"m", ".pro", ".m", ".x"}

var (
	ErrSymbolNotFound = errors.New("not found under any broker suffix")
	ErrSymbolSelect   = errors.New("could not be made visible")
)

// resolveSymbol — точное имя, затем суффиксные варианты. Найденный, но
// скрытый из Market Watch инструмент пробуем включить; неудача включения —
// отдельная ошибка, не "нет символа".
func (b *Bridge) resolveSymbol(ctx context.Context, requested string) (*models.SymbolInfo, error) {
	info := b.term.SymbolInfo(ctx, requested)
	if info == nil {
		for _, suffix := range brokerSuffixes {
			if info = b.term.SymbolInfo(ctx, requested+suffix); info != nil {
				break
			}
		}
	}
	if info == nil {
		return nil, fmt.Errorf("symbol %q %w (tried %s)",
			requested, ErrSymbolNotFound, strings.Join(brokerSuffixes, ", "))
	}
	if !info.Visible && !b.term.SymbolSelect(ctx, info.Name) {
		return nil, fmt.Errorf("symbol %q %w", info.Name, ErrSymbolSelect)
	}
	return info, nil
}
