package services

import (
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
)

// Caller is the authenticated principal resolved by the auth guard: the role
// record plus the profile entity behind the login.
type Caller struct {
	UserID      string
	EntityID    string
	EntityType  models.UserEntityType
	Role        models.RoleType
	CommunityID *string
}

// IsRoot reports whether the caller holds the root role.
func (c Caller) IsRoot() bool {
	return c.Role == models.RoleRoot
}

// sameCommunity reports whether the caller's community matches the
// resource's. Either side missing means no match.
func (c Caller) sameCommunity(resourceCommunity *string) bool {
	return c.CommunityID != nil && resourceCommunity != nil && *c.CommunityID == *resourceCommunity
}

// Allow is the single authorization policy applied by every endpoint.
// Root is always permitted. Admin is permitted iff its community matches the
// resource's community. Resident is permitted iff it owns the resource
// (personally-scoped, resourceOwner set) or, for community-scoped resources
// with no owner, its community matches.
func Allow(caller Caller, resourceCommunity *string, resourceOwner *string) bool {
	switch caller.Role {
	case models.RoleRoot:
		return true
	case models.RoleAdmin:
		return caller.sameCommunity(resourceCommunity)
	case models.RoleResident:
		if resourceOwner != nil {
			return *resourceOwner == caller.EntityID
		}
		return caller.sameCommunity(resourceCommunity)
	}
	return false
}

// scopeByCommunity restricts a query to the caller's community for non-root
// callers. col is the community column, qualified if the query joins.
func scopeByCommunity(q *gorm.DB, caller Caller, col string) *gorm.DB {
	if caller.IsRoot() {
		return q
	}
	if caller.CommunityID == nil {
		// Non-root role without a community can see nothing.
		return q.Where("1 = 0")
	}
	return q.Where(col+" = ?", *caller.CommunityID)
}

// scopePersonal restricts a query over a personally-scoped table: residents
// see only their own rows, admins their community, root everything.
func scopePersonal(q *gorm.DB, caller Caller, communityCol, ownerCol string) *gorm.DB {
	if caller.Role == models.RoleResident {
		return q.Where(ownerCol+" = ?", caller.EntityID)
	}
	return scopeByCommunity(q, caller, communityCol)
}
