package dashboard

import (
	"math"
	"testing"

	"github.com/cccteam/httpio"
	"github.com/google/go-cmp/cmp"
)

func TestData_DeleteUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		id           int
		want         []User
		wantNotFound bool
	}{
		{
			name: "existing user",
			id:   1,
			want: []User{{ID: 2, Name: "Jane Smith", Email: "jane@example.com"}},
		},
		{
			name: "unknown user",
			id:   9,
			want: []User{
				{ID: 1, Name: "John Doe", Email: "john@example.com"},
				{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
			},
			wantNotFound: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := NewData()
			err := d.DeleteUser(tt.id)
			if httpio.HasNotFound(err) != tt.wantNotFound {
				t.Fatalf("Data.DeleteUser() error = %v, wantNotFound %v", err, tt.wantNotFound)
			}
			if diff := cmp.Diff(tt.want, d.Users()); diff != "" {
				t.Errorf("Data.Users() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestData_DeleteMerchant(t *testing.T) {
	t.Parallel()

	d := NewData()
	if err := d.DeleteMerchant(2); err != nil {
		t.Fatalf("Data.DeleteMerchant() error = %v", err)
	}
	if err := d.DeleteMerchant(2); !httpio.HasNotFound(err) {
		t.Fatalf("Data.DeleteMerchant() second call error = %v, want not found", err)
	}
	want := []Merchant{{ID: 1, Name: "Super Store", Email: "super@example.com"}}
	if diff := cmp.Diff(want, d.Merchants()); diff != "" {
		t.Errorf("Data.Merchants() mismatch (-want +got):\n%s", diff)
	}
}

func TestData_ApprovePurchase(t *testing.T) {
	t.Parallel()

	d := NewData()
	for range 2 {
		got, err := d.ApprovePurchase(2)
		if err != nil {
			t.Fatalf("Data.ApprovePurchase() error = %v", err)
		}
		if got.Status != Approved {
			t.Errorf("Data.ApprovePurchase() status = %s, want %s", got.Status, Approved)
		}
	}
	if _, err := d.ApprovePurchase(3); !httpio.HasNotFound(err) {
		t.Errorf("Data.ApprovePurchase() error = %v, want not found", err)
	}

	want := []Purchase{
		{ID: 1, Customer: "John Doe", Amount: 100, Status: Pending},
		{ID: 2, Customer: "Jane Smith", Amount: 200, Status: Approved},
	}
	if diff := cmp.Diff(want, d.Purchases()); diff != "" {
		t.Errorf("Data.Purchases() mismatch (-want +got):\n%s", diff)
	}
}

func TestData_SetContributionRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		want    float64
		wantErr bool
	}{
		{name: "zero", rate: 0, want: 0},
		{name: "ten", rate: 10, want: 10},
		{name: "fractional", rate: 2.5, want: 2.5},
		{name: "tenth step", rate: 0.1, want: 0.1},
		{name: "hundred", rate: 100, want: 100},
		{name: "negative", rate: -1, want: 5, wantErr: true},
		{name: "just above hundred", rate: 100.1, want: 5, wantErr: true},
		{name: "not a number", rate: math.NaN(), want: 5, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := NewData()
			if err := d.SetContributionRate(tt.rate); (err != nil) != tt.wantErr {
				t.Fatalf("Data.SetContributionRate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := d.ContributionRate(); got != tt.want {
				t.Errorf("Data.ContributionRate() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestData_DecidePurchases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       PurchaseStatus
		ids          []int
		want         []Purchase
		wantErr      bool
		wantNotFound bool
	}{
		{
			name:   "reject both",
			status: Rejected,
			ids:    []int{2, 1},
			want: []Purchase{
				{ID: 1, Customer: "John Doe", Amount: 100, Status: Rejected},
				{ID: 2, Customer: "Jane Smith", Amount: 200, Status: Rejected},
			},
		},
		{
			name:   "approve one",
			status: Approved,
			ids:    []int{1},
			want: []Purchase{
				{ID: 1, Customer: "John Doe", Amount: 100, Status: Approved},
				{ID: 2, Customer: "Jane Smith", Amount: 200, Status: Pending},
			},
		},
		{
			name:         "unknown id changes nothing",
			status:       Approved,
			ids:          []int{1, 9},
			want:         NewData().Purchases(),
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name:    "pending is not a decision",
			status:  Pending,
			ids:     []int{1},
			want:    NewData().Purchases(),
			wantErr: true,
		},
		{
			name:    "no ids",
			status:  Rejected,
			want:    NewData().Purchases(),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := NewData()
			_, err := d.DecidePurchases(tt.status, tt.ids...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Data.DecidePurchases() error = %v, wantErr %v", err, tt.wantErr)
			}
			if httpio.HasNotFound(err) != tt.wantNotFound {
				t.Errorf("Data.DecidePurchases() error = %v, wantNotFound %v", err, tt.wantNotFound)
			}
			if diff := cmp.Diff(tt.want, d.Purchases()); diff != "" {
				t.Errorf("Data.Purchases() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestData_RejectPurchase(t *testing.T) {
	t.Parallel()

	d := NewData()
	got, err := d.RejectPurchase(1)
	if err != nil {
		t.Fatalf("Data.RejectPurchase() error = %v", err)
	}
	if got.Status != Rejected {
		t.Errorf("Data.RejectPurchase() status = %s, want %s", got.Status, Rejected)
	}
	if _, err := d.RejectPurchase(3); !httpio.HasNotFound(err) {
		t.Errorf("Data.RejectPurchase() error = %v, want not found", err)
	}
}

func TestData_Notifications(t *testing.T) {
	t.Parallel()

	d := NewData()
	if err := d.MarkNotificationRead(2); err != nil {
		t.Fatalf("Data.MarkNotificationRead() error = %v", err)
	}
	if err := d.MarkNotificationRead(5); !httpio.HasNotFound(err) {
		t.Fatalf("Data.MarkNotificationRead() error = %v, want not found", err)
	}

	want := []Notification{
		{ID: 1, Message: "New purchase approval request from John Doe."},
		{ID: 2, Message: "New purchase approval request from Jane Smith.", Read: true},
	}
	if diff := cmp.Diff(want, d.Notifications()); diff != "" {
		t.Errorf("Data.Notifications() mismatch (-want +got):\n%s", diff)
	}

	d.MarkAllNotificationsRead()
	for _, n := range d.Notifications() {
		if !n.Read {
			t.Errorf("notification %d unread after MarkAllNotificationsRead()", n.ID)
		}
	}
}

func TestData_Points(t *testing.T) {
	t.Parallel()

	got := NewData().Points()
	if got.Total != got.Pending+got.Available {
		t.Errorf("Points() = %+v, total is not pending plus available", got)
	}
}
