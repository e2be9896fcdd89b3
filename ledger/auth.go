package ledger

// AccessControl answers the role questions the ledger asks before privileged
// operations: mint requires the mint authority, deposit requires an operator.
// Role management itself belongs to the host environment.
type AccessControl interface {
	IsMintAuthority(addr Address) bool
	IsOperator(addr Address) bool
}

// StaticAccessControl is a fixed role table: one mint authority and a set of
// deposit operators. Sufficient for embedding and for tests; hosts with real
// role stores implement AccessControl directly.
type StaticAccessControl struct {
	mintAuthority Address
	operators     map[Address]struct{}
}

// Compile-time interface check.
var _ AccessControl = (*StaticAccessControl)(nil)

// NewStaticAccessControl builds a role table with the given mint authority
// and operator set.
func NewStaticAccessControl(mintAuthority Address, operators ...Address) *StaticAccessControl {
	ac := &StaticAccessControl{
		mintAuthority: mintAuthority,
		operators:     make(map[Address]struct{}, len(operators)),
	}
	for _, op := range operators {
		ac.operators[op] = struct{}{}
	}
	return ac
}

// IsMintAuthority reports whether addr is the configured mint authority.
func (s *StaticAccessControl) IsMintAuthority(addr Address) bool {
	return !s.mintAuthority.IsZero() && addr == s.mintAuthority
}

// IsOperator reports whether addr may deposit revenue.
func (s *StaticAccessControl) IsOperator(addr Address) bool {
	_, ok := s.operators[addr]
	return ok
}
