package spell

// Each coded attribute is an int domain 0..n-1. String returns the display
// label; codes outside the domain render as "" and are treated as missing.

func label(labels []string, code int) string {
	if code < 0 || code >= len(labels) {
		return ""
	}
	return labels[code]
}

// School of magic
type School int

// Schools
const (
	SchoolAbjuration School = iota
	SchoolConjuration
	SchoolDivination
	SchoolEnchantment
	SchoolEvocation
	SchoolIllusion
	SchoolNecromancy
	SchoolTransmutation
)

var schoolLabels = []string{
	"Abjuration", "Conjuration", "Divination", "Enchantment",
	"Evocation", "Illusion", "Necromancy", "Transmutation",
}

func (s School) String() string { return label(schoolLabels, int(s)) }

// CastingTime is how long a spell takes to cast
type CastingTime int

// Casting times
const (
	CastingTimeAction CastingTime = iota
	CastingTimeBonusAction
	CastingTimeReaction
	CastingTimeMinute
	CastingTimeTenMinutes
	CastingTimeHour
	CastingTimeEightHours
	CastingTimeTwelveHours
	CastingTimeTwentyFourHours
	CastingTimeSpecial
)

var castingTimeLabels = []string{
	"Action", "Bonus Action", "Reaction", "1 Minute", "10 Minutes",
	"1 Hour", "8 Hours", "12 Hours", "24 Hours", "Special",
}

func (c CastingTime) String() string { return label(castingTimeLabels, int(c)) }

// Duration is how long a spell lasts
type Duration int

// Durations
const (
	DurationInstantaneous Duration = iota
	DurationRound
	DurationMinute
	DurationTenMinutes
	DurationHour
	DurationEightHours
	DurationTwentyFourHours
	DurationSevenDays
	DurationTenDays
	DurationThirtyDays
	DurationUntilDispelled
	DurationSpecial
)

var durationLabels = []string{
	"Instantaneous", "1 Round", "1 Minute", "10 Minutes", "1 Hour", "8 Hours",
	"24 Hours", "7 Days", "10 Days", "30 Days", "Until Dispelled", "Special",
}

func (d Duration) String() string { return label(durationLabels, int(d)) }

// Range is a spell's targeting distance
type Range int

// Ranges
const (
	RangeSelf Range = iota
	RangeTouch
	RangeTenFeet
	RangeThirtyFeet
	RangeSixtyFeet
	RangeNinetyFeet
	RangeHundredTwentyFeet
	RangeHundredFiftyFeet
	RangeThreeHundredFeet
	RangeMiles
	RangeSight
	RangeSpecial
)

var rangeLabels = []string{
	"Self", "Touch", "10 ft.", "30 ft.", "60 ft.", "90 ft.",
	"120 ft.", "150 ft.", "300 ft.", "1+ Miles", "Sight", "Special",
}

func (r Range) String() string { return label(rangeLabels, int(r)) }

// AreaShape is the shape of an area of effect
type AreaShape int

// Area shapes
const (
	AreaCone AreaShape = iota
	AreaCube
	AreaCylinder
	AreaLine
	AreaSphere
	AreaSquare
	AreaWall
)

var areaShapeLabels = []string{"Cone", "Cube", "Cylinder", "Line", "Sphere", "Square", "Wall"}

func (a AreaShape) String() string { return label(areaShapeLabels, int(a)) }

// Attack is the attack roll a spell requires
type Attack int

// Attacks
const (
	AttackNone Attack = iota
	AttackMelee
	AttackRanged
)

var attackLabels = []string{"None", "Melee", "Ranged"}

func (a Attack) String() string { return label(attackLabels, int(a)) }

// SavingThrow is the ability a target saves with
type SavingThrow int

// Saving throws
const (
	SaveNone SavingThrow = iota
	SaveStrength
	SaveDexterity
	SaveConstitution
	SaveIntelligence
	SaveWisdom
	SaveCharisma
)

var savingThrowLabels = []string{
	"None", "Strength", "Dexterity", "Constitution", "Intelligence", "Wisdom", "Charisma",
}

func (s SavingThrow) String() string { return label(savingThrowLabels, int(s)) }

// DamageType is the kind of damage a spell deals
type DamageType int

// Damage types
const (
	DamageNone DamageType = iota
	DamageAcid
	DamageBludgeoning
	DamageCold
	DamageFire
	DamageForce
	DamageLightning
	DamageNecrotic
	DamagePiercing
	DamagePoison
	DamagePsychic
	DamageRadiant
	DamageSlashing
	DamageThunder
)

var damageTypeLabels = []string{
	"None", "Acid", "Bludgeoning", "Cold", "Fire", "Force", "Lightning",
	"Necrotic", "Piercing", "Poison", "Psychic", "Radiant", "Slashing", "Thunder",
}

func (d DamageType) String() string { return label(damageTypeLabels, int(d)) }

// Effect is the broad purpose of a spell
type Effect int

// Effects
const (
	EffectDamage Effect = iota
	EffectHealing
	EffectBuff
	EffectDebuff
	EffectControl
	EffectSummoning
	EffectDetection
	EffectCommunication
	EffectMovement
	EffectCreation
	EffectSocial
	EffectUtility
)

var effectLabels = []string{
	"Damage", "Healing", "Buff", "Debuff", "Control", "Summoning",
	"Detection", "Communication", "Movement", "Creation", "Social", "Utility",
}

func (e Effect) String() string { return label(effectLabels, int(e)) }

// Source is the book a spell is published in
type Source int

// Sources
const (
	SourcePlayersHandbook Source = iota
	SourceXanatharsGuide
	SourceTashasCauldron
	SourceElementalEvil
	SourceSwordCoast
	SourceStrixhaven
)

var sourceLabels = []string{"PHB", "XGE", "TCE", "EEPC", "SCAG", "SCC"}

var sourceTitles = []string{
	"Player's Handbook",
	"Xanathar's Guide to Everything",
	"Tasha's Cauldron of Everything",
	"Elemental Evil Player's Companion",
	"Sword Coast Adventurer's Guide",
	"Strixhaven: A Curriculum of Chaos",
}

func (s Source) String() string { return label(sourceLabels, int(s)) }

// Title is the full book title, used for tooltips
func (s Source) Title() string { return label(sourceTitles, int(s)) }

// Domain sizes, one per coded attribute
var (
	LevelCount       = MaxLevel + 1
	SchoolCount      = len(schoolLabels)
	CastingTimeCount = len(castingTimeLabels)
	DurationCount    = len(durationLabels)
	RangeCount       = len(rangeLabels)
	AreaShapeCount   = len(areaShapeLabels)
	AttackCount      = len(attackLabels)
	SaveCount        = len(savingThrowLabels)
	DamageTypeCount  = len(damageTypeLabels)
	EffectCount      = len(effectLabels)
	SourceCount      = len(sourceLabels)
	BooleanCount     = 2
)
