package errs

// Error codes surfaced in result envelopes. The HTTP layer maps these
// to statuses; clients and localization tables key off them.
const (
	CodeFarmNotFound        = "farm_not_found"
	CodeOwnerFarmNotFound   = "owner_farm_not_found"
	CodeCultFarmNotFound    = "cultivating_farm_not_found"
	CodeFieldNotFound       = "field_not_found"
	CodeCultivationNotFound = "cultivation_not_found"
	CodeUserNotFound        = "user_not_found"

	CodeNotAuthorizedFarm        = "user_not_authorized_farm"
	CodeNotAuthorizedField       = "user_not_authorized_field"
	CodeNotAuthorizedCultivation = "user_not_authorized_cultivation"
	CodeOwnerOnly                = "farm_owner_only"

	CodeFieldNameTaken        = "field_name_taken"
	CodeNegativeSize          = "field_size_negative"
	CodeIDMismatch            = "id_mismatch"
	CodeOwnerAsManager        = "owner_cannot_be_manager"
	CodeManagerExists         = "manager_already_assigned"
	CodeHarvestBeforePlanting = "harvest_date_before_planting"
	CodeNegativeYield         = "actual_yield_negative"
	CodeFieldNotInFarm        = "field_not_in_farm"
	CodeUnknownEnumValue      = "unknown_enum_value"

	CodeStorageFailure = "storage_failure"
)
