package service

import (
	"net/url"

	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var Product = new(ProductService)

type ProductService struct{}

// GetList 获取商品列表，可按分类筛选
func (s *ProductService) GetList(sess session.Session, category string) ([]types.Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}

	var products []types.Product
	if err := upstream.API.Get(sess, "/api/products", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetDetail 获取单个商品
func (s *ProductService) GetDetail(sess session.Session, id string) (*types.Product, error) {
	var product types.Product
	if err := upstream.API.Get(sess, "/api/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
