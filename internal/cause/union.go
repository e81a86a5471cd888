package cause

// diagnoseUnion tries each member specification against the same
// subject via a derived context. A member that comes back without a
// cause is satisfied, so the union is too and the zero Finding
// short-circuits out. Only when every member fails does the union
// fail, and then the first member's explanation is the one reported.
func diagnoseUnion(c *Context) (Finding, error) {
	var first Finding
	for _, member := range c.cls.Children {
		mc, err := c.WithSpec(member)
		if err != nil {
			return Finding{}, err
		}
		f, err := mc.Diagnose()
		if err != nil {
			return Finding{}, err
		}
		if !f.Found {
			return Finding{}, nil
		}
		if !first.Found {
			first = f
		}
	}
	return first, nil
}
