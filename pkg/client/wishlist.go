package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// WishlistMirror keeps the local view of the caller's wishlist. Unlike the
// cart, adding requires an identity: the mutation is rejected locally before
// any request goes out.
type WishlistMirror struct {
	client *Client

	mu    sync.Mutex
	lines []WishlistLine
}

func (m *WishlistMirror) Lines() []WishlistLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]WishlistLine, len(m.lines))
	copy(out, m.lines)
	return out
}

func (m *WishlistMirror) Contains(productID uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.lines {
		if l.ID == productID {
			return true
		}
	}
	return false
}

// Add appends the product to the mirror and tells the server. Adding a
// product already on the list is a local no-op, matching the server's
// insert-or-ignore.
func (m *WishlistMirror) Add(ctx context.Context, product Product) error {
	if !m.client.authenticated() {
		return ErrLoginRequired
	}
	if m.Contains(product.ID) {
		return nil
	}

	m.mu.Lock()
	m.lines = append(m.lines, WishlistLine{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Reviews:     product.Reviews,
		Image:       product.Image,
	})
	m.mu.Unlock()

	return m.client.do(ctx, http.MethodPost, "/api/wishlist", map[string]any{
		"productId": product.ID,
	}, nil)
}

func (m *WishlistMirror) Remove(ctx context.Context, productID uint) error {
	if !m.client.authenticated() {
		return ErrLoginRequired
	}

	m.mu.Lock()
	kept := m.lines[:0]
	for _, l := range m.lines {
		if l.ID != productID {
			kept = append(kept, l)
		}
	}
	m.lines = kept
	m.mu.Unlock()

	return m.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/wishlist/%d", productID), nil, nil)
}

func (m *WishlistMirror) Refresh(ctx context.Context) error {
	if !m.client.authenticated() {
		m.clear()
		return nil
	}

	var lines []WishlistLine
	if err := m.client.do(ctx, http.MethodGet, "/api/wishlist", nil, &lines); err != nil {
		return err
	}

	m.mu.Lock()
	m.lines = lines
	m.mu.Unlock()
	return nil
}

func (m *WishlistMirror) clear() {
	m.mu.Lock()
	m.lines = nil
	m.mu.Unlock()
}
