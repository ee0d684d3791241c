package service

import (
	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var Address = new(AddressService)

type AddressService struct{}

// GetBuildings 获取校区楼栋目录，结算页选地址用
func (s *AddressService) GetBuildings(sess session.Session) ([]types.Building, error) {
	var buildings []types.Building
	if err := upstream.API.Get(sess, "/api/buildings", nil, &buildings); err != nil {
		return nil, err
	}
	return buildings, nil
}

// GetList 获取当前用户的收货地址
func (s *AddressService) GetList(sess session.Session) ([]types.Address, error) {
	var addresses []types.Address
	if err := upstream.API.Get(sess, "/api/addresses", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// Create 新增收货地址
func (s *AddressService) Create(sess session.Session, req types.CreateAddressRequest) (*types.Address, error) {
	var address types.Address
	if err := upstream.API.Post(sess, "/api/addresses", req, &address); err != nil {
		return nil, err
	}
	return &address, nil
}
