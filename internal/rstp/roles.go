// roles.go
package rstp

// Role is a port's election outcome, one of spec.md §3's six roles.
type Role int

const (
	RoleNotAssigned Role = iota
	RoleDisabled
	RoleAlternate
	RoleBackup
	RoleDesignated
	RoleRoot
)

func (r Role) String() string {
	switch r {
	case RoleNotAssigned:
		return "NotAssigned"
	case RoleDisabled:
		return "Disabled"
	case RoleAlternate:
		return "Alternate"
	case RoleBackup:
		return "Backup"
	case RoleDesignated:
		return "Designated"
	case RoleRoot:
		return "Root"
	default:
		return "Unknown"
	}
}

// ForwardState is a port's forwarding progress, one of spec.md §3's three
// states.
type ForwardState int

const (
	StateDiscarding ForwardState = iota
	StateLearning
	StateForwarding
)

func (s ForwardState) String() string {
	switch s {
	case StateDiscarding:
		return "Discarding"
	case StateLearning:
		return "Learning"
	case StateForwarding:
		return "Forwarding"
	default:
		return "Unknown"
	}
}

// RoleState pairs a role with a state. Its zero value is NotAssigned/
// Discarding, the same as NotAssignedDiscarding(); every other value in
// circulation is built by one of the constructors below, which is
// how spec.md §9's design note ("model role/state as a tagged variant whose
// constructors make illegal combinations unrepresentable") is satisfied:
// only Root and Designated may carry Learning or Forwarding, and every
// other role is pinned to Discarding.
type RoleState struct {
	role  Role
	state ForwardState
}

func (rs RoleState) Role() Role         { return rs.role }
func (rs RoleState) State() ForwardState { return rs.state }

func (rs RoleState) String() string { return rs.role.String() + "/" + rs.state.String() }

func RootForwarding() RoleState       { return RoleState{RoleRoot, StateForwarding} }
func DesignatedDiscarding() RoleState { return RoleState{RoleDesignated, StateDiscarding} }
func DesignatedLearning() RoleState   { return RoleState{RoleDesignated, StateLearning} }
func DesignatedForwarding() RoleState { return RoleState{RoleDesignated, StateForwarding} }
func AlternateDiscarding() RoleState  { return RoleState{RoleAlternate, StateDiscarding} }
func BackupDiscarding() RoleState     { return RoleState{RoleBackup, StateDiscarding} }
func DisabledDiscarding() RoleState   { return RoleState{RoleDisabled, StateDiscarding} }
func NotAssignedDiscarding() RoleState {
	return RoleState{RoleNotAssigned, StateDiscarding}
}

// advance moves a Designated port one step along the forward-upgrade
// progression (spec.md §4.4); it is a no-op for any other role.
func (rs RoleState) advance() RoleState {
	if rs.role != RoleDesignated {
		return rs
	}
	switch rs.state {
	case StateDiscarding:
		return DesignatedLearning()
	case StateLearning:
		return DesignatedForwarding()
	default:
		return rs
	}
}

// canForward reports whether this role is ever permitted to reach
// Forwarding, per spec.md §3's invariant that only Root and Designated
// ports may forward.
func (r Role) canForward() bool {
	return r == RoleRoot || r == RoleDesignated
}
