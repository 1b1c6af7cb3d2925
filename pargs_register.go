package pargs

import "fmt"

// RegisterOption adds an option descriptor to the schema. It returns false,
// leaving the schema untouched, when the key is empty, the key is already
// registered, req is InheritGroup without a group, or the named group does
// not exist.
//
// A Required option enters the required set and makes its group (if any)
// mandatory; members of a mandatory group enter the required set themselves,
// even when registered with InheritGroup.
func (p *Parser) RegisterOption(key Key, req Requirement, typ ArgType, desc string, opts ...RegisterOpt) bool {
	cfg := &registerCfg{}
	for _, opt := range opts {
		opt(cfg)
	}

	if key.Empty() {
		return false
	}
	if req == InheritGroup && cfg.group == "" {
		return false
	}
	if cfg.group != "" {
		if _, ok := p.groups[cfg.group]; !ok {
			return false
		}
		if _, taken := p.groupOf[key]; taken {
			return false
		}
	}
	if p.keyRegistered(key) {
		return false
	}

	o := &option{
		key:  key,
		typ:  typ,
		desc: desc,
	}
	if cfg.defaultVal != nil {
		o.value = *cfg.defaultVal
		o.hasDefault = true
		o.isSet = true
	}

	p.options = append(p.options, o)
	// First registration wins each spelling; later options may reuse a
	// spelling as part of a distinct key but never take over the lookup.
	if key.Short != "" {
		if _, ok := p.shortIdx[key.Short]; !ok {
			p.shortIdx[key.Short] = o
		}
	}
	if key.Long != "" {
		if _, ok := p.longIdx[key.Long]; !ok {
			p.longIdx[key.Long] = o
		}
	}

	if req == Required {
		p.makeMandatory(key)
	}

	if cfg.group != "" {
		grp := p.groups[cfg.group]
		if req == Required {
			grp.mandatory = true
		}
		if grp.mandatory {
			p.makeMandatory(key)
		}
		grp.members = append(grp.members, key)
		p.groupOf[key] = cfg.group
	}

	return true
}

// RegisterPositional appends count positional slots. Slot i within this call
// takes names[i] when supplied, otherwise "ARG_<i+1>". Repeated calls append
// further slots.
func (p *Parser) RegisterPositional(count int, names ...string) {
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("ARG_%d", i+1)
		if i < len(names) {
			name = names[i]
		}
		p.positional = append(p.positional, posSlot{name: name})
	}
}

// AddMutuallyExclusiveGroup creates an empty group. Returns false if a group
// of this name already exists.
func (p *Parser) AddMutuallyExclusiveGroup(name string, mandatory bool) bool {
	if _, ok := p.groups[name]; ok {
		return false
	}
	p.groups[name] = &group{mandatory: mandatory}
	p.groupOrder = append(p.groupOrder, name)
	return true
}

// InsertIntoGroup adds a registered option's key to the named group. Returns
// false when the group does not exist, the key is not registered, or the key
// already belongs to a group.
func (p *Parser) InsertIntoGroup(name string, key Key) bool {
	grp, ok := p.groups[name]
	if !ok {
		return false
	}
	if !p.keyRegistered(key) {
		return false
	}
	if _, taken := p.groupOf[key]; taken {
		return false
	}
	grp.members = append(grp.members, key)
	p.groupOf[key] = name
	if grp.mandatory {
		p.makeMandatory(key)
	}
	return true
}

// HasOption reports whether any registered option matches name by either
// spelling.
func (p *Parser) HasOption(name string) bool {
	return p.findOption(name) != nil
}

// OptionIsSet reports whether the matching option exists and is set, whether
// by default or by the binder.
func (p *Parser) OptionIsSet(name string) bool {
	o := p.findOption(name)
	return o != nil && o.isSet
}

func (p *Parser) findOption(name string) *option {
	if o, ok := p.shortIdx[name]; ok {
		return o
	}
	if o, ok := p.longIdx[name]; ok {
		return o
	}
	return nil
}

func (p *Parser) optionByKey(key Key) *option {
	for _, o := range p.options {
		if o.key == key {
			return o
		}
	}
	return nil
}

func (p *Parser) keyRegistered(key Key) bool {
	for _, o := range p.options {
		if o.key == key {
			return true
		}
	}
	return false
}

func (p *Parser) makeMandatory(key Key) {
	for _, m := range p.mandatory {
		if m == key {
			return
		}
	}
	p.mandatory = append(p.mandatory, key)
}

func (p *Parser) inAnyGroup(key Key) bool {
	_, ok := p.groupOf[key]
	return ok
}
