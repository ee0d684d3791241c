package service

import (
	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var Cart = new(CartService)

type CartService struct{}

// Get 获取当前用户的购物车
func (s *CartService) Get(sess session.Session) (*types.Cart, error) {
	var cart types.Cart
	if err := upstream.API.Get(sess, "/api/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem 加入购物车，返回更新后的购物车
func (s *CartService) AddItem(sess session.Session, req types.AddCartItemRequest) (*types.Cart, error) {
	var cart types.Cart
	if err := upstream.API.Post(sess, "/api/cart/items", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateItem 修改购物车条目数量
func (s *CartService) UpdateItem(sess session.Session, itemID string, req types.UpdateCartItemRequest) (*types.Cart, error) {
	var cart types.Cart
	if err := upstream.API.Put(sess, "/api/cart/items/"+itemID, req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveItem 从购物车移除条目
func (s *CartService) RemoveItem(sess session.Session, itemID string) (*types.Cart, error) {
	var cart types.Cart
	if err := upstream.API.Delete(sess, "/api/cart/items/"+itemID, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
