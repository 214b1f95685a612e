package models

import "fmt"

// Rating is a single user-submitted score for a store.
type Rating struct {
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Rating    int    `json:"rating"`
}

// Store is a read-only snapshot of a store with its ratings,
// fetched per screen load and never mutated locally.
type Store struct {
	ID            string   `json:"storeId"`
	Name          string   `json:"storeName"`
	AverageRating float64  `json:"averageRating"`
	Ratings       []Rating `json:"ratings"`
}

// AverageDisplay renders the average with two decimals, the way
// every screen shows it.
func (s Store) AverageDisplay() string {
	return fmt.Sprintf("%.2f", s.AverageRating)
}

// DashboardSummary holds the admin dashboard counters.
type DashboardSummary struct {
	Users struct {
		Total int `json:"total"`
	} `json:"users"`
	Stores  int `json:"stores"`
	Ratings struct {
		Total int `json:"total"`
	} `json:"ratings"`
}
