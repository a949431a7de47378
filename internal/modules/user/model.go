// README: User model.
package user

// User.RideID points at the user's open ride, 0 when none. Balance is
// signed and may go negative; settlement never floors it.
type User struct {
	ID                int64   `json:"id" form:"id"`
	Name              string  `json:"name" form:"name"`
	Balance           float64 `json:"balance" form:"balance"`
	BankAccount       string  `json:"bank_account" form:"bank_account"`
	RecurringWithdraw float64 `json:"recurring_withdraw" form:"recurring_withdraw"`
	RideID            int64   `json:"ride_id"`
}

// Summary is the reduced listing row (id and name only).
type Summary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
