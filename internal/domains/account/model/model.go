package model

import (
	gModel "seatpos/shared/model"
	"strings"
)

const (
	EntityName = "account"

	CacheKeyProfile  = "account:profile"
	CacheKeyCustomer = "account:customer"
	CacheKeyBranch   = "account:branch"
	CacheKeyClock    = "account:clock-offset"
)

// Employee is the signed-in staff member. BranchID scopes every branch query.
type Employee struct {
	ID        gModel.ID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role,omitempty"`
	BranchID  gModel.ID `json:"branchId"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Customer is the account a booking was made for. MemberPoint can be spent on payments.
type Customer struct {
	ID          gModel.ID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Phone       string    `json:"phone,omitempty"`
	MemberPoint int64     `json:"memberPoint"`
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type Branch struct {
	ID       gModel.ID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	OpenTime string    `json:"openTime,omitempty"`
	EndTime  string    `json:"endTime,omitempty"`
}
