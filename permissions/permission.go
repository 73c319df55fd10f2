package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

// Role is the closed set of staff roles. Owner is a strict superset of the
// other three, which are equivalent for everything this service exposes.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleLeader   Role = "leader"
	RoleEmployee Role = "employee"
)

// Capability is a named permission checked against a role.
type Capability string

const (
	CapabilityManageSchedule  Capability = "manage_schedule"
	CapabilityManageUsers     Capability = "manage_users"
	CapabilityViewBookingLink Capability = "view_booking_link"
	CapabilityViewRatings     Capability = "view_ratings"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleOwner, RoleManager, RoleLeader, RoleEmployee}
}

// ValidRole reports whether the given string names a known role.
func ValidRole(role string) bool {
	return slices.Contains(Roles(), Role(role))
}

var capabilityTable = map[Role]map[Capability]bool{
	RoleOwner: {
		CapabilityManageSchedule:  true,
		CapabilityManageUsers:     true,
		CapabilityViewBookingLink: true,
		CapabilityViewRatings:     true,
	},
	RoleManager: {
		CapabilityManageSchedule: true,
	},
	RoleLeader: {
		CapabilityManageSchedule: true,
	},
	RoleEmployee: {
		CapabilityManageSchedule: true,
	},
}

// HasCapability is a pure lookup: unknown roles and capabilities have nothing.
func HasCapability(role Role, capability Capability) bool {
	return capabilityTable[role][capability]
}

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
