package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// getCart
//
//	@Summary		Корзина
//	@Description	Позиции корзины и итоги. Неизвестные каталогу товары не показываются
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	CartResponse
//	@Router			/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.getCart"

	view, err := h.cartUsecase.GetCart(r.Context(), SessionID(r.Context()))
	h.respond(w, op, view, err)
}

// setQuantity
//
//	@Summary		Установить количество
//	@Description	Количество 0 удаляет товар. Увеличение недоступно для товаров не в наличии
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID товара"
//	@Param			request	body		SetQuantityRequest	true	"Количество"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse	"Некорректный ID или количество"
//	@Failure		409		{object}	ErrorResponse	"Нет в наличии или заказ уже отправлен"
//	@Router			/cart/items/{id} [put]
func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.setQuantity"

	var req SetQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = e.Wrap("empty body", e.ErrInvalidBody)
		}
		handleError(w, h.logger, op, err)
		return
	}
	if req.Quantity == nil {
		handleError(w, h.logger, op, e.Wrap("quantity is required", e.ErrInvalidBody))
		return
	}

	view, err := h.cartUsecase.SetQuantity(r.Context(), SessionID(r.Context()), chi.URLParam(r, "id"), *req.Quantity)
	h.respond(w, op, view, err)
}

// increment
//
//	@Summary	Увеличить количество на 1
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	CartResponse
//	@Failure	409	{object}	ErrorResponse	"Нет в наличии или заказ уже отправлен"
//	@Router		/cart/items/{id}/increment [post]
func (h *CartHandler) increment(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.increment"

	view, err := h.cartUsecase.Increment(r.Context(), SessionID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, op, view, err)
}

// decrement
//
//	@Summary	Уменьшить количество на 1
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	CartResponse
//	@Router		/cart/items/{id}/decrement [post]
func (h *CartHandler) decrement(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.decrement"

	view, err := h.cartUsecase.Decrement(r.Context(), SessionID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, op, view, err)
}

// removeItem
//
//	@Summary	Удалить товар из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	CartResponse
//	@Router		/cart/items/{id} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.removeItem"

	view, err := h.cartUsecase.Remove(r.Context(), SessionID(r.Context()), chi.URLParam(r, "id"))
	h.respond(w, op, view, err)
}

// clearCart
//
//	@Summary	Очистить корзину
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Failure	409	{object}	ErrorResponse	"Заказ уже отправлен"
//	@Router		/cart [delete]
func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.clearCart"

	view, err := h.cartUsecase.Clear(r.Context(), SessionID(r.Context()))
	h.respond(w, op, view, err)
}

func (h *CartHandler) respond(w http.ResponseWriter, op string, view *usecase.CartView, err error) {
	if err != nil {
		handleError(w, h.logger, op, err)
		return
	}
	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}
