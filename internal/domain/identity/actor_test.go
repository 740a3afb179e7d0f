package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"owner", RoleOwner, true},
		{"backoffice", RoleBackoffice, true},
		{"retailer", RoleRetailer, true},
		{"location_user", RoleLocationUser, true},
		{"  Owner  ", RoleOwner, true},
		{"admin", Role("admin"), false},
		{"", Role(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestActor_CanAccessRetailer(t *testing.T) {
	retailerA := uuid.New()
	retailerB := uuid.New()
	locationA := uuid.New()

	tests := []struct {
		name  string
		actor Actor
		query uuid.UUID
		want  bool
	}{
		{
			name:  "owner sees any retailer",
			actor: NewActor(uuid.New(), RoleOwner),
			query: retailerA,
			want:  true,
		},
		{
			name:  "backoffice sees any retailer",
			actor: NewActor(uuid.New(), RoleBackoffice),
			query: retailerB,
			want:  true,
		},
		{
			name:  "retailer sees own retailer",
			actor: NewActor(uuid.New(), RoleRetailer).WithRetailerScope(retailerA),
			query: retailerA,
			want:  true,
		},
		{
			name:  "retailer denied for another retailer",
			actor: NewActor(uuid.New(), RoleRetailer).WithRetailerScope(retailerA),
			query: retailerB,
			want:  false,
		},
		{
			name:  "retailer without scope denied",
			actor: NewActor(uuid.New(), RoleRetailer),
			query: retailerA,
			want:  false,
		},
		{
			name:  "location user never has retailer-wide access",
			actor: NewActor(uuid.New(), RoleLocationUser).WithRetailerScope(retailerA).WithLocationScope(locationA),
			query: retailerA,
			want:  false,
		},
		{
			name:  "unknown role denied",
			actor: Actor{ID: uuid.New(), Role: Role("ghost")},
			query: retailerA,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanAccessRetailer(tt.query))
		})
	}
}

func TestActor_CanAccessLocation(t *testing.T) {
	retailerA := uuid.New()
	locationA := uuid.New()
	locationB := uuid.New()

	tests := []struct {
		name  string
		actor Actor
		query uuid.UUID
		want  bool
	}{
		{
			name:  "owner sees any location",
			actor: NewActor(uuid.New(), RoleOwner),
			query: locationA,
			want:  true,
		},
		{
			name:  "backoffice sees any location",
			actor: NewActor(uuid.New(), RoleBackoffice),
			query: locationB,
			want:  true,
		},
		{
			name:  "retailer with scope trusted for any location",
			actor: NewActor(uuid.New(), RoleRetailer).WithRetailerScope(retailerA),
			query: locationB,
			want:  true,
		},
		{
			name:  "retailer without scope denied",
			actor: NewActor(uuid.New(), RoleRetailer),
			query: locationA,
			want:  false,
		},
		{
			name:  "location user sees own location",
			actor: NewActor(uuid.New(), RoleLocationUser).WithLocationScope(locationA),
			query: locationA,
			want:  true,
		},
		{
			name:  "location user denied for sibling location",
			actor: NewActor(uuid.New(), RoleLocationUser).WithRetailerScope(retailerA).WithLocationScope(locationA),
			query: locationB,
			want:  false,
		},
		{
			name:  "unknown role denied",
			actor: Actor{ID: uuid.New(), Role: Role("ghost")},
			query: locationA,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanAccessLocation(tt.query))
		})
	}
}

func TestActor_IsAuthenticated(t *testing.T) {
	assert.True(t, NewActor(uuid.New(), RoleOwner).IsAuthenticated())
	assert.False(t, Actor{}.IsAuthenticated())
	assert.False(t, Actor{ID: uuid.New(), Role: Role("ghost")}.IsAuthenticated())
	assert.False(t, Actor{Role: RoleOwner}.IsAuthenticated())
}
