package sessionstore

import (
	"context"
	"testing"

	"github.com/cccteam/rolegate/mock/mock_snapshot"
	"github.com/cccteam/rolegate/roles"
	"github.com/cccteam/rolegate/sessioninfo"
	"github.com/cccteam/rolegate/snapshot"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func newMemoryKV() snapshot.KV {
	return snapshot.Scoped(snapshot.NewMemory(), uuid.Nil)
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stored  snapshot.Values
		prepare func(*mock_snapshot.MockKV)
		want    sessioninfo.Session
	}{
		{
			name: "empty snapshot",
			want: sessioninfo.Session{},
		},
		{
			name:   "restores stored session",
			stored: snapshot.Values{snapshot.KeyToken: "admin-token", snapshot.KeyRole: "admin"},
			want:   sessioninfo.Session{Token: "admin-token", Role: roles.Admin},
		},
		{
			name:   "role outside enumeration",
			stored: snapshot.Values{snapshot.KeyToken: "admin-token", snapshot.KeyRole: "superadmin"},
			want:   sessioninfo.Session{},
		},
		{
			name:   "role differs in case",
			stored: snapshot.Values{snapshot.KeyToken: "admin-token", snapshot.KeyRole: "Admin"},
			want:   sessioninfo.Session{},
		},
		{
			name:   "token without role",
			stored: snapshot.Values{snapshot.KeyToken: "admin-token"},
			want:   sessioninfo.Session{},
		},
		{
			name:   "role without token",
			stored: snapshot.Values{snapshot.KeyRole: "member"},
			want:   sessioninfo.Session{},
		},
		{
			name:   "empty token",
			stored: snapshot.Values{snapshot.KeyToken: "", snapshot.KeyRole: "member"},
			want:   sessioninfo.Session{},
		},
		{
			name: "snapshot read fails",
			prepare: func(kv *mock_snapshot.MockKV) {
				kv.EXPECT().Get(gomock.Any(), snapshot.KeyToken, snapshot.KeyRole).Return(nil, errors.New("disk on fire"))
			},
			want: sessioninfo.Session{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			var kv snapshot.KV
			if tt.prepare != nil {
				m := mock_snapshot.NewMockKV(gomock.NewController(t))
				tt.prepare(m)
				kv = m
			} else {
				kv = newMemoryKV()
				if tt.stored != nil {
					if err := kv.Put(ctx, tt.stored); err != nil {
						t.Fatalf("KV.Put() error = %v", err)
					}
				}
			}

			s := New(kv)
			if diff := cmp.Diff(tt.want, s.Load(ctx)); diff != "" {
				t.Errorf("Store.Load() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want, s.Current(ctx)); diff != "" {
				t.Errorf("Store.Current() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStore_LoadKeepsCommitDuringRead(t *testing.T) {
	t.Parallel()

	kv := mock_snapshot.NewMockKV(gomock.NewController(t))
	s := New(kv)

	kv.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	kv.EXPECT().Get(gomock.Any(), snapshot.KeyToken, snapshot.KeyRole).DoAndReturn(
		func(ctx context.Context, _ ...snapshot.Key) (snapshot.Values, error) {
			if err := s.Commit(ctx, roles.Merchant, "merchant-token"); err != nil {
				t.Errorf("Store.Commit() error = %v", err)
			}

			return snapshot.Values{}, nil
		},
	)

	want := sessioninfo.Session{Token: "merchant-token", Role: roles.Merchant}
	if diff := cmp.Diff(want, s.Load(context.Background())); diff != "" {
		t.Errorf("Store.Load() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, s.Current(context.Background())); diff != "" {
		t.Errorf("Store.Current() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_CommitThenLoad(t *testing.T) {
	t.Parallel()

	for _, role := range roles.All() {
		t.Run(role.String(), func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			kv := newMemoryKV()

			token := role.String() + "-token"
			if err := New(kv).Commit(ctx, role, token); err != nil {
				t.Fatalf("Store.Commit() error = %v", err)
			}

			// a fresh Store over the same snapshot behaves like a restarted process
			want := sessioninfo.Session{Token: token, Role: role}
			if diff := cmp.Diff(want, New(kv).Load(ctx)); diff != "" {
				t.Errorf("Store.Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStore_Commit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		role    roles.Role
		token   string
		prepare func(*mock_snapshot.MockKV)
		want    sessioninfo.Session
		wantErr bool
	}{
		{
			name:  "writes role and token together",
			role:  roles.Merchant,
			token: "merchant-token",
			prepare: func(kv *mock_snapshot.MockKV) {
				kv.EXPECT().Put(gomock.Any(), snapshot.Values{
					snapshot.KeyToken: "merchant-token",
					snapshot.KeyRole:  "merchant",
				}).Return(nil)
			},
			want: sessioninfo.Session{Token: "merchant-token", Role: roles.Merchant},
		},
		{
			name:    "rejects role outside enumeration",
			role:    "superadmin",
			token:   "t",
			wantErr: true,
		},
		{
			name:    "rejects empty role",
			token:   "t",
			wantErr: true,
		},
		{
			name:    "rejects empty token",
			role:    roles.Admin,
			wantErr: true,
		},
		{
			name:  "write failure leaves memory unchanged",
			role:  roles.Admin,
			token: "admin-token",
			prepare: func(kv *mock_snapshot.MockKV) {
				kv.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("read-only file system"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			kv := mock_snapshot.NewMockKV(gomock.NewController(t))
			kv.EXPECT().Get(gomock.Any(), snapshot.KeyToken, snapshot.KeyRole).Return(snapshot.Values{}, nil).AnyTimes()
			if tt.prepare != nil {
				tt.prepare(kv)
			}

			s := New(kv)
			notified := 0
			s.Subscribe(func(sessioninfo.Session) { notified++ })

			if err := s.Commit(ctx, tt.role, tt.token); (err != nil) != tt.wantErr {
				t.Fatalf("Store.Commit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, s.Current(ctx)); diff != "" {
				t.Errorf("Store.Current() mismatch (-want +got):\n%s", diff)
			}
			if wantNotified := map[bool]int{true: 0, false: 1}[tt.wantErr]; notified != wantNotified {
				t.Errorf("subscriber notified %d times, want %d", notified, wantNotified)
			}
		})
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newMemoryKV()

	s := New(kv)
	if err := s.Commit(ctx, roles.Member, "member-token"); err != nil {
		t.Fatalf("Store.Commit() error = %v", err)
	}

	for i := range 2 {
		if err := s.Clear(ctx); err != nil {
			t.Fatalf("Store.Clear() #%d error = %v", i+1, err)
		}
		if diff := cmp.Diff(sessioninfo.Session{}, s.Current(ctx)); diff != "" {
			t.Errorf("Store.Current() after Clear() #%d mismatch (-want +got):\n%s", i+1, diff)
		}
		if diff := cmp.Diff(sessioninfo.Session{}, s.Load(ctx)); diff != "" {
			t.Errorf("Store.Load() after Clear() #%d mismatch (-want +got):\n%s", i+1, diff)
		}
	}

	vals, err := kv.Get(ctx, snapshot.KeyToken, snapshot.KeyRole)
	if err != nil {
		t.Fatalf("KV.Get() error = %v", err)
	}
	if len(vals) != 0 {
		t.Errorf("snapshot still holds %v after Clear()", vals)
	}
}

func TestStore_ClearFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := mock_snapshot.NewMockKV(gomock.NewController(t))
	kv.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	kv.EXPECT().Remove(gomock.Any(), snapshot.KeyToken, snapshot.KeyRole).Return(errors.New("permission denied"))

	s := New(kv)
	if err := s.Commit(ctx, roles.Admin, "admin-token"); err != nil {
		t.Fatalf("Store.Commit() error = %v", err)
	}
	if err := s.Clear(ctx); err == nil {
		t.Fatalf("Store.Clear() error = nil, want error")
	}

	want := sessioninfo.Session{Token: "admin-token", Role: roles.Admin}
	if diff := cmp.Diff(want, s.Current(ctx)); diff != "" {
		t.Errorf("Store.Current() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_Subscribe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(newMemoryKV())

	var first, second []sessioninfo.Session
	var order []string
	unsubscribeFirst := s.Subscribe(func(sess sessioninfo.Session) {
		first = append(first, sess)
		order = append(order, "first")
	})
	s.Subscribe(func(sess sessioninfo.Session) {
		second = append(second, sess)
		order = append(order, "second")
	})

	if err := s.Commit(ctx, roles.Admin, "admin-token"); err != nil {
		t.Fatalf("Store.Commit() error = %v", err)
	}
	unsubscribeFirst()
	unsubscribeFirst()
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Store.Clear() error = %v", err)
	}

	wantFirst := []sessioninfo.Session{{Token: "admin-token", Role: roles.Admin}}
	if diff := cmp.Diff(wantFirst, first); diff != "" {
		t.Errorf("first subscriber mismatch (-want +got):\n%s", diff)
	}
	wantSecond := []sessioninfo.Session{{Token: "admin-token", Role: roles.Admin}, {}}
	if diff := cmp.Diff(wantSecond, second); diff != "" {
		t.Errorf("second subscriber mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"first", "second", "second"}, order); diff != "" {
		t.Errorf("notification order mismatch (-want +got):\n%s", diff)
	}
}
