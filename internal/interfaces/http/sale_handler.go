package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/receipts"
	"github.com/hedelmia/pos-api/internal/application/sales"
	"github.com/hedelmia/pos-api/internal/domain/sale"
)

// SaleHandler carrito, cobro y consulta de ventas.
type SaleHandler struct {
	cart     *sales.CartUseCase
	checkout *sales.CheckoutUseCase
	receipts *receipts.UseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(cart *sales.CartUseCase, checkout *sales.CheckoutUseCase, rc *receipts.UseCase) *SaleHandler {
	return &SaleHandler{cart: cart, checkout: checkout, receipts: rc}
}

// AddCartItem godoc
// @Summary      Agregar producto al carrito
// @Description  El carrito lo conserva el cliente. Si la cantidad acumulada supera el stock
// @Description  se rechaza solo ese renglón (422) y el carrito no cambia.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CartItemRequest  true  "Carrito actual y renglón"
// @Success      200   {object}  dto.CartResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales/cart/items [post]
func (h *SaleHandler) AddCartItem(c *fiber.Ctx) error {
	var in dto.CartItemRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	cart := in.Cart
	var err error
	if in.Set {
		err = h.cart.SetQuantity(c.Context(), &cart, in.ProductID, in.Quantity)
	} else {
		err = h.cart.AddItem(c.Context(), &cart, in.ProductID, in.Quantity)
	}
	if err != nil {
		return writeError(c, err)
	}
	if cart.Lines == nil {
		cart.Lines = []sale.CartLine{}
	}
	return c.JSON(dto.CartResponse{Cart: cart, Subtotal: cart.Subtotal()})
}

// Checkout godoc
// @Summary      Cobrar venta
// @Description  Valida todo antes de escribir. Si algo falla no se registra nada.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales/checkout [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	input := sales.CheckoutInput{
		Items:         make([]sale.Item, 0, len(in.Items)),
		CustomerID:    in.CustomerID,
		CreditSale:    in.CreditSale,
		PaymentMethod: in.PaymentMethod,
	}
	for _, it := range in.Items {
		input.Items = append(input.Items, sale.Item{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	if in.Discount != nil {
		input.Discount = &sale.Discount{Type: in.Discount.Type, Value: in.Discount.Value}
	}
	s, err := h.checkout.Checkout(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromSale(s))
}

// List GET /api/sales?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *SaleHandler) List(c *fiber.Ctx) error {
	from, err := queryDate(c, "from")
	if err != nil {
		return badRequest(c, "INVALID_DATE", "from debe ser YYYY-MM-DD")
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return badRequest(c, "INVALID_DATE", "to debe ser YYYY-MM-DD")
	}
	list, err := h.checkout.ListSales(c.Context(), from, endOfDay(to))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(dto.Map(list, dto.FromSale)))
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.checkout.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromSale(s))
}

// GetByFolio GET /api/sales/folio/:folio
func (h *SaleHandler) GetByFolio(c *fiber.Ctx) error {
	s, err := h.checkout.GetSaleByFolio(c.Context(), c.Params("folio"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromSale(s))
}

// Ticket godoc
// @Summary      Ticket de venta en PDF
// @Tags         sales
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/ticket.pdf [get]
func (h *SaleHandler) Ticket(c *fiber.Ctx) error {
	data, filename, err := h.receipts.SaleTicket(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, data, filename)
}
