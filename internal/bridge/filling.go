package bridge

import "mt5_bridge/internal/models"

// negotiateFilling выбирает режим исполнения по битам инструмента.
// Чистая функция с жёстким приоритетом: FOK, затем IOC, затем RETURN —
// RETURN не рекламируется битом, это запасной режим ECN-брокеров.
func negotiateFilling(modes int) int {
	switch {
	case modes&models.SymbolFillingFOK != 0:
		return models.OrderFillingFOK
	case modes&models.SymbolFillingIOC != 0:
		return models.OrderFillingIOC
	default:
		return models.OrderFillingReturn
	}
}
