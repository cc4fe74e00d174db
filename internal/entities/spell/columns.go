package spell

// Column is a grid column key; it matches the row's JSON field name
type Column string

// Columns
const (
	ColumnName          Column = "name"
	ColumnLevel         Column = "level"
	ColumnSchool        Column = "school"
	ColumnCastingTime   Column = "castingTime"
	ColumnDuration      Column = "duration"
	ColumnRange         Column = "range"
	ColumnArea          Column = "area"
	ColumnAttack        Column = "attack"
	ColumnSave          Column = "save"
	ColumnDamage        Column = "damage"
	ColumnEffect        Column = "effect"
	ColumnRitual        Column = "ritual"
	ColumnConcentration Column = "concentration"
	ColumnVerbal        Column = "verbal"
	ColumnSomatic       Column = "somatic"
	ColumnMaterial      Column = "material"
	ColumnSource        Column = "source"
	ColumnDetails       Column = "details"
)

// AllColumns lists every column in display order
var AllColumns = []Column{
	ColumnName, ColumnLevel, ColumnSchool, ColumnCastingTime, ColumnDuration,
	ColumnRange, ColumnArea, ColumnAttack, ColumnSave, ColumnDamage, ColumnEffect,
	ColumnRitual, ColumnConcentration, ColumnVerbal, ColumnSomatic,
	ColumnMaterial, ColumnSource, ColumnDetails,
}

// DefaultColumns are visible until the user picks otherwise
var DefaultColumns = []Column{
	ColumnName, ColumnLevel, ColumnCastingTime, ColumnDuration, ColumnRange,
	ColumnArea, ColumnAttack, ColumnSave, ColumnDamage, ColumnEffect,
	ColumnMaterial, ColumnSource, ColumnDetails,
}

var columnDisplayNames = map[Column]string{
	ColumnName:          "Name",
	ColumnLevel:         "Level",
	ColumnSchool:        "School",
	ColumnCastingTime:   "Casting Time",
	ColumnDuration:      "Duration",
	ColumnRange:         "Range",
	ColumnArea:          "Area",
	ColumnAttack:        "Attack",
	ColumnSave:          "Save",
	ColumnDamage:        "Damage",
	ColumnEffect:        "Effect",
	ColumnRitual:        "Ritual",
	ColumnConcentration: "Concentration",
	ColumnVerbal:        "Verbal",
	ColumnSomatic:       "Somatic",
	ColumnMaterial:      "Material",
	ColumnSource:        "Source",
	ColumnDetails:       "Details",
}

// DisplayName is the column header
func (c Column) DisplayName() string {
	return columnDisplayNames[c]
}

// IsValid reports whether c names a known column
func (c Column) IsValid() bool {
	_, ok := columnDisplayNames[c]
	return ok
}
