package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"time"
)

// Event is a fundraising event as submitted to POST /eventos
type Event struct {
	Title       string    `json:"nombre"`
	Description string    `json:"descripcion"`
	StartsAt    time.Time `json:"fechaInicio"`
	EndsAt      time.Time `json:"fechaFin"`
	Venue       string    `json:"lugar"`
	Target      Amount    `json:"objetivoRecaudacion"`
	ImageURL    string    `json:"imagenUrl"`
}

// MarshalJSON writes the schedule as RFC 3339 in UTC
func (e Event) MarshalJSON() ([]byte, error) {
	type wire struct {
		Title       string `json:"nombre"`
		Description string `json:"descripcion"`
		StartsAt    string `json:"fechaInicio"`
		EndsAt      string `json:"fechaFin"`
		Venue       string `json:"lugar"`
		Target      Amount `json:"objetivoRecaudacion"`
		ImageURL    string `json:"imagenUrl"`
	}
	return json.Marshal(wire{
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    e.StartsAt.UTC().Format(time.RFC3339),
		EndsAt:      e.EndsAt.UTC().Format(time.RFC3339),
		Venue:       e.Venue,
		Target:      e.Target,
		ImageURL:    e.ImageURL,
	})
}

// Amount is a currency amount in cents
type Amount int64

// Euros builds an Amount from whole units
func Euros(units int64) Amount {
	return Amount(units * 100)
}

// Cents returns the amount in cents
func (a Amount) Cents() int64 {
	return int64(a)
}

func (a Amount) String() string {
	cents := int64(a)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON writes the amount as a JSON number with two decimals
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts any JSON number and rounds to the nearest cent.
// Strings are rejected even when they hold a number; null leaves a unchanged.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	n, ok := v.(json.Number)
	if !ok {
		return fmt.Errorf("amount: expected a JSON number, got %s", data)
	}
	r, ok := new(big.Rat).SetString(n.String())
	if !ok {
		return fmt.Errorf("amount: invalid number %q", n)
	}
	r.Mul(r, big.NewRat(100, 1))
	// round half away from zero
	half := big.NewRat(1, 2)
	if r.Sign() < 0 {
		r.Sub(r, half)
	} else {
		r.Add(r, half)
	}
	q := new(big.Int).Quo(r.Num(), r.Denom())
	if !q.IsInt64() {
		return fmt.Errorf("amount: %q out of range", n)
	}
	*a = Amount(q.Int64())
	return nil
}

// CreatedEvent is the decoded body of a successful POST /eventos
type CreatedEvent struct {
	RawID  json.RawMessage `json:"id"`
	Title  string          `json:"nombre"`
	Status string          `json:"estado,omitempty"`
}

// ID returns the event identifier as a string whether the backend sent a
// number or a string. Whole numbers come back in integer form, so 1e3 and
// 1000.0 are "1000". Missing, null, zero and empty ids count as absent.
func (c *CreatedEvent) ID() string {
	if c == nil || len(c.RawID) == 0 {
		return ""
	}
	dec := json.NewDecoder(bytes.NewReader(c.RawID))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return ""
	}
	switch id := v.(type) {
	case json.Number:
		r, ok := new(big.Rat).SetString(id.String())
		if !ok {
			return id.String()
		}
		if r.Sign() == 0 {
			return ""
		}
		if r.IsInt() {
			return r.Num().String()
		}
		return id.String()
	case string:
		return id
	}
	return ""
}
