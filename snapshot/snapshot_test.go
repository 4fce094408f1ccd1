package snapshot

import (
	"context"
	"testing"

	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

var testClientID = uuid.Must(uuid.FromString("92922509-82d2-4bc7-853a-d73b8926a55f"))

func Test_dbTable_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		keys    []Key
		prepare func(*Mockdb)
		want    Values
		wantErr bool
	}{
		{
			name: "no keys does not query",
			want: Values{},
		},
		{
			name: "success",
			keys: []Key{KeyToken, KeyRole},
			prepare: func(db *Mockdb) {
				db.EXPECT().Entries(gomock.Any(), testClientID, "token", "role").Return(map[string]string{"token": "admin-token", "role": "admin"}, nil)
			},
			want: Values{KeyToken: "admin-token", KeyRole: "admin"},
		},
		{
			name: "fails on db error",
			keys: []Key{KeyToken},
			prepare: func(db *Mockdb) {
				db.EXPECT().Entries(gomock.Any(), testClientID, "token").Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			db := NewMockdb(ctrl)
			if tt.prepare != nil {
				tt.prepare(db)
			}

			table := &dbTable{db: db}
			got, err := table.Get(context.Background(), testClientID, tt.keys...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("dbTable.Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("dbTable.Get() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_dbTable_PutRemove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		run     func(*dbTable) error
		prepare func(*Mockdb)
		wantErr bool
	}{
		{
			name: "put writes every value in one call",
			run: func(table *dbTable) error {
				return table.Put(context.Background(), testClientID, Values{KeyToken: "member-token", KeyRole: "member"})
			},
			prepare: func(db *Mockdb) {
				db.EXPECT().UpsertEntries(gomock.Any(), testClientID, map[string]string{"token": "member-token", "role": "member"}).Return(nil)
			},
		},
		{
			name: "put of nothing is a no-op",
			run: func(table *dbTable) error {
				return table.Put(context.Background(), testClientID, Values{})
			},
		},
		{
			name: "put fails",
			run: func(table *dbTable) error {
				return table.Put(context.Background(), testClientID, Values{KeyToken: "member-token", KeyRole: "member"})
			},
			prepare: func(db *Mockdb) {
				db.EXPECT().UpsertEntries(gomock.Any(), testClientID, gomock.Any()).Return(errors.New("deadline exceeded"))
			},
			wantErr: true,
		},
		{
			name: "remove deletes keys",
			run: func(table *dbTable) error {
				return table.Remove(context.Background(), testClientID, KeyToken, KeyRole)
			},
			prepare: func(db *Mockdb) {
				db.EXPECT().DeleteEntries(gomock.Any(), testClientID, "token", "role").Return(nil)
			},
		},
		{
			name: "remove fails",
			run: func(table *dbTable) error {
				return table.Remove(context.Background(), testClientID, KeyToken)
			},
			prepare: func(db *Mockdb) {
				db.EXPECT().DeleteEntries(gomock.Any(), testClientID, "token").Return(errors.New("deadline exceeded"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			db := NewMockdb(ctrl)
			if tt.prepare != nil {
				tt.prepare(db)
			}

			if err := tt.run(&dbTable{db: db}); (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
