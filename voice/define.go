package voice

import "reflect"

type managerCheck struct {
	field    string
	required bool
	methods  []string
	value    func(p *Provider) any
}

// Checked in order; DefineProvider stops at the first violation.
var managerChecks = []managerCheck{
	{"agents", true, []string{"create", "list", "get", "update", "delete"}, func(p *Provider) any { return p.Agents }},
	{"calls", true, []string{"create", "list", "get", "update", "delete"}, func(p *Provider) any { return p.Calls }},
	{"phoneNumbers", true, []string{"list", "get"}, func(p *Provider) any { return p.PhoneNumbers }},
	{"tools", false, []string{"create", "list", "get", "update", "delete"}, func(p *Provider) any { return p.Tools }},
	{"files", false, []string{"create", "list", "get", "update", "delete"}, func(p *Provider) any { return p.Files }},
	{"knowledgeBase", false, []string{"create", "list", "get", "delete"}, func(p *Provider) any { return p.KnowledgeBase }},
}

// DefineProvider validates a hand-built provider before calling code
// trusts it. It returns p unchanged on success, or an *Error naming the
// first missing field or method. In-repo vendors are trusted and do not
// go through it.
func DefineProvider(p *Provider) (*Provider, error) {
	if p == nil {
		return nil, newError("defineProvider: provider is required")
	}
	if p.ProviderID == "" {
		return nil, newError("defineProvider: providerId must be a non-empty string")
	}
	// Presence of every required manager is checked before any method.
	for _, c := range managerChecks {
		if c.required && isNil(c.value(p)) {
			return nil, newError("defineProvider: %s manager is required", c.field)
		}
	}
	for _, c := range managerChecks {
		m := c.value(p)
		if isNil(m) {
			continue
		}
		ms, ok := m.(methodSet)
		if !ok {
			continue
		}
		for _, method := range c.methods {
			if !ms.hasMethod(method) {
				return nil, newError("defineProvider: %s.%s must be a function", c.field, method)
			}
		}
	}
	return p, nil
}

// isNil catches typed nil pointers stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
