package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// CartMirror keeps the local view of the caller's cart. Mutations update the
// mirror before the request is sent and are never rolled back on failure.
type CartMirror struct {
	client *Client

	mu    sync.Mutex
	lines []CartLine
}

// Lines returns a copy of the mirrored cart.
func (m *CartMirror) Lines() []CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

func (m *CartMirror) Count() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, l := range m.lines {
		n += l.Quantity
	}
	return n
}

func (m *CartMirror) Total() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, l := range m.lines {
		total += l.Price * l.Quantity
	}
	return total
}

// Add puts one unit of the product in the mirror, merging into an existing
// line, then tells the server. Without an identity only the mirror changes.
func (m *CartMirror) Add(ctx context.Context, product Product) error {
	m.mu.Lock()
	merged := false
	for i := range m.lines {
		if m.lines[i].ID == product.ID {
			m.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		m.lines = append(m.lines, CartLine{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Reviews:     product.Reviews,
			Image:       product.Image,
			Quantity:    1,
		})
	}
	m.mu.Unlock()

	if !m.client.authenticated() {
		return nil
	}
	return m.client.do(ctx, http.MethodPost, "/api/cart", map[string]any{
		"productId": product.ID,
		"quantity":  1,
	}, nil)
}

// UpdateQuantity applies the delta to the mirrored line, clamping at 1; the
// only way to reach zero is Remove. The server receives the clamped value.
func (m *CartMirror) UpdateQuantity(ctx context.Context, productID uint, delta int64) error {
	var newQty int64

	m.mu.Lock()
	found := false
	for i := range m.lines {
		if m.lines[i].ID == productID {
			newQty = m.lines[i].Quantity + delta
			if newQty < 1 {
				newQty = 1
			}
			m.lines[i].Quantity = newQty
			found = true
			break
		}
	}
	m.mu.Unlock()

	if !found || !m.client.authenticated() {
		return nil
	}
	return m.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/cart/%d", productID), map[string]any{
		"quantity": newQty,
	}, nil)
}

func (m *CartMirror) Remove(ctx context.Context, productID uint) error {
	m.mu.Lock()
	kept := m.lines[:0]
	for _, l := range m.lines {
		if l.ID != productID {
			kept = append(kept, l)
		}
	}
	m.lines = kept
	m.mu.Unlock()

	if !m.client.authenticated() {
		return nil
	}
	return m.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d", productID), nil, nil)
}

// Refresh replaces the mirror with the server's cart.
func (m *CartMirror) Refresh(ctx context.Context) error {
	if !m.client.authenticated() {
		m.clear()
		return nil
	}

	var lines []CartLine
	if err := m.client.do(ctx, http.MethodGet, "/api/cart", nil, &lines); err != nil {
		return err
	}

	m.mu.Lock()
	m.lines = lines
	m.mu.Unlock()
	return nil
}

func (m *CartMirror) clear() {
	m.mu.Lock()
	m.lines = nil
	m.mu.Unlock()
}
