package usecase

import "context"

// OrderJournal принимает диагностические записи об отправленных заказах.
// Ошибки журнала не влияют на результат оформления.
type OrderJournal interface {
	Publish(ctx context.Context, record *OrderRecord) error
}
