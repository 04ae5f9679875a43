package domain

// EntityKind identifies which catalog a moderated entity belongs to.
type EntityKind string

const (
	EntityKindIngredient EntityKind = "INGREDIENT"
	EntityKindTag        EntityKind = "TAG"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindIngredient, EntityKindTag:
		return true
	}
	return false
}

// EntityStatus is the moderation state of a catalog entity.
type EntityStatus string

const (
	EntityStatusPending  EntityStatus = "PENDING"
	EntityStatusApproved EntityStatus = "APPROVED"
)

func (s EntityStatus) String() string { return string(s) }

func (s EntityStatus) IsValid() bool {
	switch s {
	case EntityStatusPending, EntityStatusApproved:
		return true
	}
	return false
}

// ContentKind identifies the content side of an association.
type ContentKind string

const (
	ContentKindRecipe   ContentKind = "RECIPE"
	ContentKindProposal ContentKind = "PROPOSAL"
)

func (k ContentKind) String() string { return string(k) }

// ProposalStatus is the review state of a recipe edit proposal.
type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "PENDING"
	ProposalStatusRejected ProposalStatus = "REJECTED"
	ProposalStatusAccepted ProposalStatus = "ACCEPTED"
)

func (s ProposalStatus) String() string { return string(s) }

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusPending, ProposalStatusRejected, ProposalStatusAccepted:
		return true
	}
	return false
}

// MemberRole is a user's role inside one community.
type MemberRole string

const (
	MemberRoleMember    MemberRole = "MEMBER"
	MemberRoleModerator MemberRole = "MODERATOR"
	MemberRoleOwner     MemberRole = "OWNER"
)

func (r MemberRole) String() string { return string(r) }

// CanModerate reports whether the role may moderate community content.
func (r MemberRole) CanModerate() bool {
	return r == MemberRoleModerator || r == MemberRoleOwner
}

// TargetType identifies the kind of object an audit entry refers to.
type TargetType string

const (
	TargetTypeIngredient TargetType = "INGREDIENT"
	TargetTypeTag        TargetType = "TAG"
	TargetTypeUnit       TargetType = "UNIT"
	TargetTypeRecipe     TargetType = "RECIPE"
	TargetTypeMembership TargetType = "MEMBERSHIP"
)

func (t TargetType) String() string { return string(t) }

// TargetTypeFor returns the audit target type for an entity kind.
func TargetTypeFor(kind EntityKind) TargetType {
	if kind == EntityKindTag {
		return TargetTypeTag
	}
	return TargetTypeIngredient
}

// AuditType represents the kind of state change recorded in the audit log.
type AuditType string

const (
	AuditTypeEntityCreated  AuditType = "ENTITY_CREATED"
	AuditTypeEntityModified AuditType = "ENTITY_MODIFIED"
	AuditTypeEntityApproved AuditType = "ENTITY_APPROVED"
	AuditTypeEntityRejected AuditType = "ENTITY_REJECTED"
	AuditTypeEntityMerged   AuditType = "ENTITY_MERGED"
	AuditTypeEntityDeleted  AuditType = "ENTITY_DELETED"
	AuditTypeVariantCreated AuditType = "VARIANT_CREATED"
	AuditTypeMemberRemoved  AuditType = "MEMBER_REMOVED"
)

func (a AuditType) String() string { return string(a) }

func (a AuditType) IsValid() bool {
	switch a {
	case AuditTypeEntityCreated, AuditTypeEntityModified, AuditTypeEntityApproved,
		AuditTypeEntityRejected, AuditTypeEntityMerged, AuditTypeEntityDeleted,
		AuditTypeVariantCreated, AuditTypeMemberRemoved:
		return true
	}
	return false
}

// UserRole represents the platform-wide authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
