package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

// getCheckout
//
//	@Summary	Состояние оформления заказа
//	@Tags		checkout
//	@Produce	json
//	@Success	200	{object}	CheckoutResponse
//	@Router		/checkout [get]
func (h *CheckoutHandler) getCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.getCheckout"

	view, err := h.checkoutUsecase.GetCheckout(r.Context(), SessionID(r.Context()))
	h.respond(w, op, view, err)
}

// openCheckout
//
//	@Summary		Открыть форму оформления
//	@Description	Доступно для непустой корзины. Минимальная дата самовывоза фиксируется при открытии
//	@Tags			checkout
//	@Produce		json
//	@Success		200	{object}	CheckoutResponse
//	@Failure		409	{object}	ErrorResponse	"Корзина пуста или заказ уже отправлен"
//	@Router			/checkout [post]
func (h *CheckoutHandler) openCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.openCheckout"

	view, err := h.checkoutUsecase.Open(r.Context(), SessionID(r.Context()))
	h.respond(w, op, view, err)
}

// updateDraft
//
//	@Summary		Изменить поля черновика
//	@Description	Принимает объект вида {"name": "...", "pickupDate": "YYYY-MM-DD"}. Изменяются только переданные поля
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		map[string]string	true	"Поля черновика"
//	@Success		200		{object}	CheckoutResponse
//	@Failure		400		{object}	ErrorResponse	"Неизвестное поле"
//	@Failure		409		{object}	ErrorResponse	"Форма не открыта или заказ отправлен"
//	@Router			/checkout/draft [patch]
func (h *CheckoutHandler) updateDraft(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.updateDraft"

	var fields map[string]string
	if err := decodeJSON(w, r, &fields); err != nil {
		if errors.Is(err, io.EOF) {
			err = e.Wrap("empty body", e.ErrInvalidBody)
		}
		handleError(w, h.logger, op, err)
		return
	}

	view, err := h.checkoutUsecase.UpdateDraft(r.Context(), SessionID(r.Context()), fields)
	h.respond(w, op, view, err)
}

// submitOrder
//
//	@Summary		Отправить заказ
//	@Description	Необязательное тело заменяет черновик целиком перед проверкой
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		OrderDraftDTO	false	"Черновик"
//	@Success		200		{object}	CheckoutResponse
//	@Failure		409		{object}	ErrorResponse	"Форма не открыта или корзина пуста"
//	@Failure		422		{object}	ErrorResponse	"Черновик не прошёл проверку"
//	@Router			/checkout/submit [post]
func (h *CheckoutHandler) submitOrder(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.submitOrder"

	var draft *OrderDraftDTO
	var body OrderDraftDTO
	switch err := decodeJSON(w, r, &body); {
	case err == nil:
		draft = &body
	case errors.Is(err, io.EOF):
	default:
		handleError(w, h.logger, op, err)
		return
	}

	view, err := h.checkoutUsecase.Submit(r.Context(), SessionID(r.Context()), draft.toDomain())
	h.respond(w, op, view, err)
}

// closeCheckout
//
//	@Summary		Закрыть форму
//	@Description	После отправленного заказа очищает корзину. Из редактирования просто отбрасывает черновик
//	@Tags			checkout
//	@Produce		json
//	@Success		200	{object}	CloseCheckoutResponse
//	@Router			/checkout [delete]
func (h *CheckoutHandler) closeCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.closeCheckout"

	res, err := h.checkoutUsecase.Close(r.Context(), SessionID(r.Context()))
	if err != nil {
		handleError(w, h.logger, op, err)
		return
	}

	WriteSuccess(w, http.StatusOK, CloseCheckoutResponse{
		Completed: res.Completed,
		Cart:      toCartResponse(res.Cart),
	})
}

func (h *CheckoutHandler) respond(w http.ResponseWriter, op string, view *usecase.CheckoutView, err error) {
	if err != nil {
		handleError(w, h.logger, op, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toCheckoutResponse(view))
}
