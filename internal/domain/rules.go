package domain

type RuleAction string

const (
	RuleAllow    RuleAction = "allow"
	RuleDisallow RuleAction = "disallow"
)

type Rule struct {
	Action RuleAction `json:"action"`
	OS     *OSRule    `json:"os,omitempty"`
}

type OSRule struct {
	Name string `json:"name,omitempty"`
}

func (r Rule) osName() string {
	if r.OS == nil {
		return ""
	}
	return r.OS.Name
}

// RulesAllow evaluates rules in order and stops at the first one that
// excludes the platform. No rules means the library is always included.
func RulesAllow(rules []Rule, platform string) bool {
	for _, rule := range rules {
		name := rule.osName()
		switch rule.Action {
		case RuleAllow:
			if name != "" && name != platform {
				return false
			}
		case RuleDisallow:
			if name == "" || name == platform {
				return false
			}
		}
	}
	return true
}

func (l Library) AllowedOn(platform Platform) bool {
	return RulesAllow(l.Rules, platform.Name)
}
