package repos

import (
	"github.com/google/uuid"

	"github.com/paavkar/AgricultureApp/internal/types"
)

// farmJoinRow is one flat row of the fanned-out farm listing query.
// Nil pointers mark the absent side of a LEFT JOIN.
type farmJoinRow struct {
	Farm       types.Farm
	Owner      types.FarmPerson
	Manager    *types.FarmManagerInfo
	Field      *types.Field
	OwnedField *types.Field
}

// foldFarmRows collapses the join fan-out into one FarmInfo per farm.
// Farms keep first-seen order, children append at most once per id,
// and the child collections are always non-nil.
func foldFarmRows(rows []farmJoinRow) []*types.FarmInfo {
	byID := make(map[uuid.UUID]*types.FarmInfo, len(rows))
	ordered := []*types.FarmInfo{}
	for i := range rows {
		row := &rows[i]
		info, ok := byID[row.Farm.ID]
		if !ok {
			info = &types.FarmInfo{
				Farm:        row.Farm,
				Owner:       row.Owner,
				Managers:    []types.FarmManagerInfo{},
				Fields:      []types.Field{},
				OwnedFields: []types.Field{},
			}
			byID[row.Farm.ID] = info
			ordered = append(ordered, info)
		}
		if row.Manager != nil && !hasManager(info.Managers, row.Manager.UserID) {
			info.Managers = append(info.Managers, *row.Manager)
		}
		if row.Field != nil && !hasField(info.Fields, row.Field.ID) {
			info.Fields = append(info.Fields, *row.Field)
		}
		if row.OwnedField != nil && !hasField(info.OwnedFields, row.OwnedField.ID) {
			info.OwnedFields = append(info.OwnedFields, *row.OwnedField)
		}
	}
	return ordered
}

// fieldJoinRow is one flat row of the field detail query, which fans
// out across the field's cultivation history.
type fieldJoinRow struct {
	Field          types.Field
	CurrentFarm    *types.Farm
	OwnerFarm      *types.Farm
	Cultivation    *types.FieldCultivation
	CultivatedFarm *types.Farm
}

func foldFieldRows(rows []fieldJoinRow) []*types.FieldInfo {
	byID := make(map[uuid.UUID]*types.FieldInfo, 1)
	ordered := []*types.FieldInfo{}
	for i := range rows {
		row := &rows[i]
		info, ok := byID[row.Field.ID]
		if !ok {
			info = &types.FieldInfo{
				Field:        row.Field,
				CurrentFarm:  row.CurrentFarm,
				OwnerFarm:    row.OwnerFarm,
				Cultivations: []types.CultivationInfo{},
			}
			byID[row.Field.ID] = info
			ordered = append(ordered, info)
		}
		if row.Cultivation != nil && !hasCultivation(info.Cultivations, row.Cultivation.ID) {
			info.Cultivations = append(info.Cultivations, types.CultivationInfo{
				FieldCultivation: *row.Cultivation,
				CultivatedFarm:   row.CultivatedFarm,
			})
		}
	}
	return ordered
}

// assembleFarmInfo builds the full aggregate from the six batch result
// sets. A missing farm or owner row yields nil; the roster joins each
// manager row to its user record by id; child collections are always
// non-nil.
func assembleFarmInfo(
	farm *types.Farm,
	managers []types.FarmManager,
	owner *types.FarmPerson,
	managerUsers []types.FarmPerson,
	fields, ownedFields []types.Field,
) *types.FarmInfo {
	if farm == nil || owner == nil {
		return nil
	}
	if fields == nil {
		fields = []types.Field{}
	}
	if ownedFields == nil {
		ownedFields = []types.Field{}
	}

	info := &types.FarmInfo{
		Farm:        *farm,
		Owner:       *owner,
		Managers:    []types.FarmManagerInfo{},
		Fields:      fields,
		OwnedFields: ownedFields,
	}
	for _, m := range managers {
		entry := types.FarmManagerInfo{UserID: m.UserID, AssignedAt: m.AssignedAt}
		for _, u := range managerUsers {
			if u.UserID == m.UserID {
				entry.Name = u.Name
				entry.Email = u.Email
				break
			}
		}
		info.Managers = append(info.Managers, entry)
	}
	return info
}

func hasManager(managers []types.FarmManagerInfo, userID uuid.UUID) bool {
	for i := range managers {
		if managers[i].UserID == userID {
			return true
		}
	}
	return false
}

func hasField(fields []types.Field, fieldID uuid.UUID) bool {
	for i := range fields {
		if fields[i].ID == fieldID {
			return true
		}
	}
	return false
}

func hasCultivation(cultivations []types.CultivationInfo, cultivationID uuid.UUID) bool {
	for i := range cultivations {
		if cultivations[i].ID == cultivationID {
			return true
		}
	}
	return false
}
