package schema

// Catalog maps logical dataset identifiers to their column type overrides.
// Adding a column correction is purely a data change here; parsing and
// writing never need to know about individual columns.
type Catalog map[string]Overrides

// OverridesFor returns the override table for a dataset. Unknown dataset
// identifiers get an empty table, so conversion falls back to inference
// for every column rather than failing.
func (c Catalog) OverridesFor(datasetID string) Overrides {
	if o, ok := c[datasetID]; ok {
		return o
	}
	return Overrides{}
}

// Datasets returns the registered dataset identifiers.
func (c Catalog) Datasets() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	return ids
}

// Default is the catalog for the EPC open-data extracts.
// See https://epc.opendatacommunities.org/docs/guidance#glossary_domestic
var Default = Catalog{
	"certificates":    certificateOverrides,
	"recommendations": recommendationOverrides,
}

// LMK_KEY is a string - the first few rows look like integers.
// The docs say `*_{CURRENT,POTENTIAL}` columns are integers but floats
// were found in the data.
var certificateOverrides = Overrides{
	"LMK_KEY":                      TypeString,
	"ADDRESS1":                     TypeString,
	"ADDRESS2":                     TypeString,
	"ADDRESS3":                     TypeString,
	"POSTCODE":                     TypeString,
	"BUILDING_REFERENCE_NUMBER":    TypeInt64,
	"CURRENT_ENERGY_RATING":        TypeString,
	"POTENTIAL_ENERGY_RATING":      TypeString,
	"CURRENT_ENERGY_EFFICIENCY":    TypeInt64,
	"POTENTIAL_ENERGY_EFFICIENCY":  TypeInt64,
	"PROPERTY_TYPE":                TypeString,
	"BUILT_FORM":                   TypeString,
	"INSPECTION_DATE":              TypeDate,
	"LOCAL_AUTHORITY":              TypeString,
	"CONSTITUENCY":                 TypeString,
	"COUNTY":                       TypeString,
	"LODGEMENT_DATE":               TypeDate,
	"TRANSACTION_TYPE":             TypeString,
	"ENVIRONMENT_IMPACT_CURRENT":   TypeFloat64,
	"ENVIRONMENT_IMPACT_POTENTIAL": TypeFloat64,
	"ENERGY_CONSUMPTION_CURRENT":   TypeFloat64,
	"ENERGY_CONSUMPTION_POTENTIAL": TypeFloat64,
	"CO2_EMISSIONS_CURRENT":        TypeFloat64,
	"CO2_EMISS_CURR_PER_FLOOR_AREA": TypeFloat64,
	"CO2_EMISSIONS_POTENTIAL":      TypeFloat64,
	"LIGHTING_COST_CURRENT":        TypeFloat64,
	"LIGHTING_COST_POTENTIAL":      TypeFloat64,
	"HEATING_COST_CURRENT":         TypeFloat64,
	"HEATING_COST_POTENTIAL":       TypeFloat64,
	"HOT_WATER_COST_CURRENT":       TypeFloat64,
	"HOT_WATER_COST_POTENTIAL":     TypeFloat64,
	"TOTAL_FLOOR_AREA":             TypeFloat64,
	"ENERGY_TARIFF":                TypeString,
	"MAINS_GAS_FLAG":               TypeString,
	"FLOOR_LEVEL":                  TypeString,
	"FLAT_TOP_STOREY":              TypeString,
	"FLAT_STOREY_COUNT":            TypeInt64,
	"MAIN_HEATING_CONTROLS":        TypeString,
	"MULTI_GLAZE_PROPORTION":       TypeFloat64, // int but values are floats, e.g 1.0
	"GLAZED_TYPE":                  TypeString,
	"GLAZED_AREA":                  TypeString,
	"EXTENSION_COUNT":              TypeFloat64, // int but values are floats, e.g 1.0
	"NUMBER_HABITABLE_ROOMS":       TypeFloat64, // int but values are floats, e.g 1.0
	"NUMBER_HEATED_ROOMS":          TypeFloat64,
	"LOW_ENERGY_LIGHTING":          TypeInt64,
	"NUMBER_OPEN_FIREPLACES":       TypeInt64,
	"HOTWATER_DESCRIPTION":         TypeString,
	"HOT_WATER_ENERGY_EFF":         TypeString,
	"HOT_WATER_ENV_EFF":            TypeString,
	"FLOOR_DESCRIPTION":            TypeString,
	"FLOOR_ENERGY_EFF":             TypeString,
	"FLOOR_ENV_EFF":                TypeString,
	"WINDOWS_DESCRIPTION":          TypeString,
	"WINDOWS_ENERGY_EFF":           TypeString,
	"WINDOWS_ENV_EFF":              TypeString,
	"WALLS_DESCRIPTION":            TypeString,
	"WALLS_ENERGY_EFF":             TypeString,
	"WALLS_ENV_EFF":                TypeString,
	"SECONDHEAT_DESCRIPTION":       TypeString,
	"SHEATING_ENERGY_EFF":          TypeString,
	"SHEATING_ENV_EFF":             TypeString,
	"ROOF_DESCRIPTION":             TypeString,
	"ROOF_ENERGY_EFF":              TypeString,
	"ROOF_ENV_EFF":                 TypeString,
	"MAINHEAT_DESCRIPTION":         TypeString,
	"MAINHEAT_ENERGY_EFF":          TypeString,
	"MAINHEAT_ENV_EFF":             TypeString,
	"MAINHEATCONT_DESCRIPTION":     TypeString,
	"MAINHEATC_ENERGY_EFF":         TypeString,
	"MAINHEATC_ENV_EFF":            TypeString,
	"LIGHTING_DESCRIPTION":         TypeString,
	"LIGHTING_ENERGY_EFF":          TypeString,
	"LIGHTING_ENV_EFF":             TypeString,
	"MAIN_FUEL":                    TypeString,
	"WIND_TURBINE_COUNT":           TypeFloat64,
	"HEAT_LOSS_CORRIDOR":           TypeString,
	"UNHEATED_CORRIDOR_LENGTH":     TypeFloat64,
	"FLOOR_HEIGHT":                 TypeFloat64,
	"PHOTO_SUPPLY":                 TypeFloat64,
	"SOLAR_WATER_HEATING_FLAG":     TypeString,
	"MECHANICAL_VENTILATION":       TypeString,
	"ADDRESS":                      TypeString,
	"LOCAL_AUTHORITY_LABEL":        TypeString,
	"CONSTITUENCY_LABEL":           TypeString,
	"POSTTOWN":                     TypeString,
	"CONSTRUCTION_AGE_BAND":        TypeString,
	"LODGEMENT_DATETIME":           TypeTimestamp,
	"TENURE":                       TypeString,
	"FIXED_LIGHTING_OUTLETS_COUNT": TypeFloat64,
	"LOW_ENERGY_FIXED_LIGHT_COUNT": TypeFloat64,
	"UPRN":                         TypeInt64,
	"UPRN_SOURCE":                  TypeString,
}

var recommendationOverrides = Overrides{
	"LMK_KEY":                  TypeString,
	"IMPROVEMENT_ITEM":         TypeInt64,
	"IMPROVEMENT_SUMMARY_TEXT": TypeString,
	"IMPROVEMENT_DESCR_TEXT":   TypeString,
	"IMPROVEMENT_ID":           TypeInt64,
	"IMPROVEMENT_ID_TEXT":      TypeString,
	"INDICATIVE_COST":          TypeString,
}
