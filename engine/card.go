package engine

// classFamily ties a class tag to its Atk/Hp buff-source ability kinds and
// the buff kinds they grant, so buff propagation (buff.go) can stay
// table-driven instead of repeating four near-identical branches per call
// site (spec §4.4).
type classFamily struct {
	tag     AttrKind
	atkSrc  AttrKind
	hpSrc   AttrKind
	atkBuff AttrKind
	hpBuff  AttrKind
}

var classFamilies = [4]classFamily{
	{AttrTundra, AttrTundraAtk, AttrTundraHp, AttrTundraAtkBuff, AttrTundraHpBuff},
	{AttrForest, AttrForestAtk, AttrForestHp, AttrForestAtkBuff, AttrForestHpBuff},
	{AttrMountain, AttrMountainAtk, AttrMountainHp, AttrMountainAtkBuff, AttrMountainHpBuff},
	{AttrSwamp, AttrSwampAtk, AttrSwampHp, AttrSwampAtkBuff, AttrSwampHpBuff},
}

// MaxAbilitiesPerCard bounds a template's base ability list (spec §6).
const MaxAbilitiesPerCard = 39

// CardTemplate is the immutable, catalog-owned definition of a card.
// Shared by reference across every trial and worker.
type CardTemplate struct {
	Name      string
	Cost      int
	Timing    int
	BaseAtk   int
	BaseHP    int
	BaseAttrs []Attribute
}

// Card is the mutable per-trial instance of a template.
type Card struct {
	Template *CardTemplate

	CurTiming int
	Atk       int
	CurBaseAtk int // tracks base after permanent modification; distinct from Atk (spec §3)
	HP        int
	MaxHP     int

	Attrs Attributes

	IsDemon bool // demon and player cards share this type (spec §9)
}

// NewCard instantiates a fresh per-trial Card from a template, with
// CurTiming set to the template's timing; callers that play a card at once
// (Reanimate) set it to 0 themselves.
func NewCard(tpl *CardTemplate) *Card {
	c := &Card{
		Template:   tpl,
		CurTiming:  tpl.Timing,
		Atk:        tpl.BaseAtk,
		CurBaseAtk: tpl.BaseAtk,
		HP:         tpl.BaseHP,
		MaxHP:      tpl.BaseHP,
	}
	for _, a := range tpl.BaseAttrs {
		c.Attrs.Add(a)
	}
	return c
}

// ResetFromTemplate restores base stats and attributes in place, as used
// when building the "fresh copy" that a dying or exiled card is replaced
// by before routing to grave/deck/hand (spec §4.6 step 4).
func (c *Card) ResetFromTemplate() {
	tpl := c.Template
	c.CurTiming = tpl.Timing
	c.Atk = tpl.BaseAtk
	c.CurBaseAtk = tpl.BaseAtk
	c.HP = tpl.BaseHP
	c.MaxHP = tpl.BaseHP
	c.Attrs.Reset()
	for _, a := range tpl.BaseAttrs {
		c.Attrs.Add(a)
	}
}

// Name is a convenience accessor for tracing and reports.
func (c *Card) Name() string {
	if c.Template == nil {
		return "<dead>"
	}
	return c.Template.Name
}

// Has reports whether the card carries an attribute of the given kind.
func (c *Card) Has(kind AttrKind) (bool, int) { return c.Attrs.Has(kind) }

// IsAlive reports whether the card has positive hp and no DEAD marker.
func (c *Card) IsAlive() bool {
	if c.HP <= 0 {
		return false
	}
	dead, _ := c.Attrs.Has(AttrDead)
	return !dead
}

// Kill zeroes hp and attaches the DEAD marker (idempotent).
func (c *Card) Kill() {
	c.HP = 0
	if dead, _ := c.Attrs.Has(AttrDead); !dead {
		c.Attrs.Add(Attribute{Kind: AttrDead})
	}
}

// ApplyHPDamage subtracts dmg from hp, clamped at zero. Returns the actual
// hp lost (never more than the card's remaining hp).
func (c *Card) ApplyHPDamage(dmg int) int {
	if dmg < 0 {
		dmg = 0
	}
	before := c.HP
	c.HP -= dmg
	if c.HP < 0 {
		c.HP = 0
	}
	return before - c.HP
}

// Heal restores hp, capped at maxHP. Returns the amount actually healed.
func (c *Card) Heal(amount int) int {
	if amount <= 0 || c.HP <= 0 {
		return 0
	}
	before := c.HP
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return c.HP - before
}

// DeadCard returns a field sentinel: a dead, templateless card bearing
// only the DEAD marker, used to hold a position open for the remainder of
// a round so neighbor-targeting abilities still resolve correctly
// (spec §4.3, §4.6 step 5).
func DeadCard() *Card {
	c := &Card{}
	c.Attrs.Add(Attribute{Kind: AttrDead})
	return c
}

// ClassFamilies returns a copy of the class table (buff.go reads
// classFamilies directly).
func ClassFamilies() [4]classFamily { return classFamilies }
