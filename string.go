package genval

// String creates a string schema.
func String() *Node {
	return &Node{Kind: KindString}
}

// CheckKind identifies a string refinement.
type CheckKind string

const (
	// CheckDate requires an ISO 8601 calendar date (YYYY-MM-DD).
	CheckDate CheckKind = "date"
	// CheckDateTime requires an RFC 3339 date-time.
	CheckDateTime CheckKind = "date-time"
	// CheckRegex requires the value to match a pattern.
	CheckRegex CheckKind = "regex"
	// CheckEmail requires an email address.
	CheckEmail CheckKind = "email"
	// CheckMinLength bounds the length from below.
	CheckMinLength CheckKind = "min length"
	// CheckMaxLength bounds the length from above.
	CheckMaxLength CheckKind = "max length"
)

// StringCheck is a refinement attached to a string schema.
type StringCheck struct {
	Kind CheckKind
	// Pattern is the regular expression of a CheckRegex check.
	Pattern string
	// Length is the bound of a CheckMinLength or CheckMaxLength check.
	Length int
}

// Date requires the string to be an ISO 8601 calendar date.
func (n *Node) Date() *Node {
	n.Checks = append(n.Checks, StringCheck{Kind: CheckDate})
	return n
}

// DateTime requires the string to be an RFC 3339 date-time.
func (n *Node) DateTime() *Node {
	n.Checks = append(n.Checks, StringCheck{Kind: CheckDateTime})
	return n
}

// Regex requires the string to match the pattern.
func (n *Node) Regex(pattern string) *Node {
	n.Checks = append(n.Checks, StringCheck{Kind: CheckRegex, Pattern: pattern})
	return n
}

// Email requires the string to be an email address.
func (n *Node) Email() *Node {
	n.Checks = append(n.Checks, StringCheck{Kind: CheckEmail})
	return n
}
