// Package dashboard serves the per-role dashboard panels over in-memory demo data.
package dashboard

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/cccteam/httpio"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Merchant struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PurchaseStatus is the approval state of a purchase.
type PurchaseStatus string

const (
	Pending  PurchaseStatus = "Pending"
	Approved PurchaseStatus = "Approved"
	Rejected PurchaseStatus = "Rejected"
)

type Purchase struct {
	ID       int            `json:"id"`
	Customer string         `json:"customer"`
	Amount   int            `json:"amount"`
	Status   PurchaseStatus `json:"status"`
}

type Notification struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

// Points is a member's point balance.
type Points struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Available int `json:"available"`
}

// Data is the demo data shown on the dashboards. It is shared by every client
// of the process and safe for concurrent use.
type Data struct {
	mu               sync.Mutex
	users            []User
	merchants        []Merchant
	purchases        []Purchase
	contributionRate float64
	notifications    []Notification
	points           Points
}

// NewData returns the demo fixtures.
func NewData() *Data {
	return &Data{
		users: []User{
			{ID: 1, Name: "John Doe", Email: "john@example.com"},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
		},
		merchants: []Merchant{
			{ID: 1, Name: "Super Store", Email: "super@example.com"},
			{ID: 2, Name: "Mega Mart", Email: "mega@example.com"},
		},
		purchases: []Purchase{
			{ID: 1, Customer: "John Doe", Amount: 100, Status: Pending},
			{ID: 2, Customer: "Jane Smith", Amount: 200, Status: Pending},
		},
		contributionRate: 5,
		notifications: []Notification{
			{ID: 1, Message: "New purchase approval request from John Doe."},
			{ID: 2, Message: "New purchase approval request from Jane Smith."},
		},
		points: Points{Total: 1000, Pending: 200, Available: 800},
	}
}

func (d *Data) Users() []User {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.users)
}

func (d *Data) Merchants() []Merchant {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.merchants)
}

func (d *Data) DeleteUser(id int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := slices.IndexFunc(d.users, func(u User) bool { return u.ID == id })
	if i < 0 {
		return httpio.NewNotFoundMessagef("user %d not found", id)
	}
	d.users = slices.Delete(d.users, i, i+1)

	return nil
}

func (d *Data) DeleteMerchant(id int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := slices.IndexFunc(d.merchants, func(m Merchant) bool { return m.ID == id })
	if i < 0 {
		return httpio.NewNotFoundMessagef("merchant %d not found", id)
	}
	d.merchants = slices.Delete(d.merchants, i, i+1)

	return nil
}

func (d *Data) Purchases() []Purchase {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.purchases)
}

// ApprovePurchase marks the purchase approved. Approving twice is not an error.
func (d *Data) ApprovePurchase(id int) (Purchase, error) {
	p, err := d.DecidePurchases(Approved, id)
	if err != nil {
		return Purchase{}, err
	}

	return p[0], nil
}

// RejectPurchase marks the purchase rejected.
func (d *Data) RejectPurchase(id int) (Purchase, error) {
	p, err := d.DecidePurchases(Rejected, id)
	if err != nil {
		return Purchase{}, err
	}

	return p[0], nil
}

// DecidePurchases sets status on every purchase in ids and returns them in
// the order given. If any id is unknown nothing changes.
func (d *Data) DecidePurchases(status PurchaseStatus, ids ...int) ([]Purchase, error) {
	if status != Approved && status != Rejected {
		return nil, httpio.NewBadRequestMessage(fmt.Sprintf("purchase status %q is not a decision", status))
	}
	if len(ids) == 0 {
		return nil, httpio.NewBadRequestMessage("no purchases selected")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	idx := make([]int, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(d.purchases, func(p Purchase) bool { return p.ID == id })
		if i < 0 {
			return nil, httpio.NewNotFoundMessagef("purchase %d not found", id)
		}
		idx = append(idx, i)
	}

	decided := make([]Purchase, 0, len(idx))
	for _, i := range idx {
		d.purchases[i].Status = status
		decided = append(decided, d.purchases[i])
	}

	return decided, nil
}

func (d *Data) ContributionRate() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.contributionRate
}

// SetContributionRate sets the percentage of each purchase a merchant contributes.
func (d *Data) SetContributionRate(rate float64) error {
	if math.IsNaN(rate) || rate < 0 || rate > 100 {
		return httpio.NewBadRequestMessage(fmt.Sprintf("contribution rate %g outside 0-100", rate))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.contributionRate = rate

	return nil
}

func (d *Data) Notifications() []Notification {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.notifications)
}

// MarkNotificationRead marks one notification read.
func (d *Data) MarkNotificationRead(id int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := slices.IndexFunc(d.notifications, func(n Notification) bool { return n.ID == id })
	if i < 0 {
		return httpio.NewNotFoundMessagef("notification %d not found", id)
	}
	d.notifications[i].Read = true

	return nil
}

func (d *Data) MarkAllNotificationsRead() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.notifications {
		d.notifications[i].Read = true
	}
}

func (d *Data) Points() Points {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.points
}
