package nextfinance

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrInvalidTradeAmount reports an empty or non numeric share amount.
	ErrInvalidTradeAmount = errors.New("invalid trade amount")
	// ErrInvalidSide reports a side other than Buy or Sell.
	ErrInvalidSide = errors.New("invalid trade side")
)

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

// ParseSide accepts "buy" or "sell" in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidSide)
}

// TradeTicket is the order form of a stock detail view.
type TradeTicket struct {
	stock  Stock
	side   Side
	amount string
}

// NewTradeTicket opens a Buy ticket with an empty amount.
func NewTradeTicket(stock Stock) *TradeTicket {
	return &TradeTicket{stock: stock, side: Buy}
}

func (t *TradeTicket) Stock() Stock            { return t.stock }
func (t *TradeTicket) Side() Side              { return t.side }
func (t *TradeTicket) SetSide(side Side)       { t.side = side }
func (t *TradeTicket) Amount() string          { return t.amount }
func (t *TradeTicket) SetAmount(text string)   { t.amount = text }
func (t *TradeTicket) Shares() (Shares, error) { return ParseShares(t.amount) }

// EstimatedCost is the share amount times the price, or zero while the amount does not parse.
func (t *TradeTicket) EstimatedCost() Money {
	shares, err := t.Shares()
	if err != nil {
		return M(0, t.stock.Price.Currency())
	}
	return t.stock.Price.Mul(shares)
}

// Order is a simulated transaction. Nothing is executed.
type Order struct {
	StockID string `json:"stockId"`
	Side    Side   `json:"side"`
	Shares  Shares `json:"shares"`
	Price   Money  `json:"price"`
	Total   Money  `json:"total"`
}

func (o Order) String() string {
	return fmt.Sprintf("Simulated Transaction: %s %s shares of %s at %s", o.Side, o.Shares, o.StockID, o.Price)
}

// Submit validates the ticket and logs the simulated transaction.
// An invalid amount is logged and returned, and the ticket is left untouched.
func (t *TradeTicket) Submit(log *zap.Logger) (Order, error) {
	shares, err := t.Shares()
	if err != nil {
		log.Error("Invalid trade amount", zap.String("stock", t.stock.ID), zap.String("amount", t.amount), zap.Error(err))
		return Order{}, err
	}
	o := Order{
		StockID: t.stock.ID,
		Side:    t.side,
		Shares:  shares,
		Price:   t.stock.Price,
		Total:   t.stock.Price.Mul(shares),
	}
	log.Info(o.String(),
		zap.String("stock", o.StockID),
		zap.String("side", string(o.Side)),
		zap.Stringer("shares", o.Shares),
		zap.Stringer("total", o.Total),
	)
	return o, nil
}
