package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/types"
)

// FarmGraphRepo serves the aggregate reads. The read contract differs
// from the write repos: storage failures are logged here and surfaced
// to callers as nil (detail reads) or an empty slice (list reads), so
// services map them to not-found envelopes instead of propagating
// errors.
type FarmGraphRepo interface {
	GetFullInfo(ctx context.Context, farmID uuid.UUID) *types.FarmInfo
	GetByOwner(ctx context.Context, ownerID uuid.UUID) []*types.FarmInfo
	GetByManager(ctx context.Context, managerID uuid.UUID) []*types.FarmInfo
	GetFieldInfo(ctx context.Context, fieldID uuid.UUID) *types.FieldInfo
	GetFieldCultivations(ctx context.Context, fieldID uuid.UUID) []types.CultivationInfo
}

type farmGraphRepo struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

func NewFarmGraphRepo(pool *pgxpool.Pool, baseLog *logger.Logger) FarmGraphRepo {
	return &farmGraphRepo{pool: pool, log: baseLog.With("repo", "FarmGraphRepo")}
}

// GetFullInfo resolves the whole farm aggregate in one round trip: the
// farm row, its manager roster, the owner and manager users, and both
// field collections travel as one batch.
func (r *farmGraphRepo) GetFullInfo(ctx context.Context, farmID uuid.UUID) *types.FarmInfo {
	batch := &pgx.Batch{}
	batch.Queue(`
		SELECT id, name, location, owner_id, created_at, updated_at, created_by, updated_by
		FROM farms WHERE id = $1`, farmID)
	batch.Queue(`
		SELECT farm_id, user_id, assigned_at
		FROM farm_managers WHERE farm_id = $1`, farmID)
	batch.Queue(`
		SELECT u.id, u.name, u.email
		FROM users u
		INNER JOIN farms f ON u.id = f.owner_id
		WHERE f.id = $1`, farmID)
	batch.Queue(`
		SELECT u.id, u.name, u.email
		FROM users u
		INNER JOIN farm_managers fm ON u.id = fm.user_id
		WHERE fm.farm_id = $1`, farmID)
	batch.Queue(`
		SELECT id, name, size, size_unit, status, soil_type, farm_id, owner_farm_id
		FROM fields WHERE farm_id = $1`, farmID)
	batch.Queue(`
		SELECT id, name, size, size_unit, status, soil_type, farm_id, owner_farm_id
		FROM fields WHERE owner_farm_id = $1`, farmID)

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	farm, err := r.readFarmRow(results)
	if err != nil {
		r.log.Error("reading farm row", "farmID", farmID, "error", err)
		return nil
	}
	if farm == nil {
		return nil
	}

	managers, err := r.readManagerRows(results)
	if err != nil {
		r.log.Error("reading farm managers", "farmID", farmID, "error", err)
		return nil
	}
	owner, err := r.readPersonRow(results)
	if err != nil {
		r.log.Error("reading farm owner", "farmID", farmID, "error", err)
		return nil
	}
	managerUsers, err := r.readPersonRows(results)
	if err != nil {
		r.log.Error("reading manager users", "farmID", farmID, "error", err)
		return nil
	}
	fields, err := r.readFieldRows(results)
	if err != nil {
		r.log.Error("reading cultivated fields", "farmID", farmID, "error", err)
		return nil
	}
	ownedFields, err := r.readFieldRows(results)
	if err != nil {
		r.log.Error("reading owned fields", "farmID", farmID, "error", err)
		return nil
	}

	return assembleFarmInfo(farm, managers, owner, managerUsers, fields, ownedFields)
}

const farmListQuery = `
	SELECT f.id, f.name, f.location, f.owner_id, f.created_at, f.updated_at, f.created_by, f.updated_by,
	       u.id, u.name, u.email,
	       fm.user_id, fm.assigned_at, mu.name, mu.email,
	       fd.id, fd.name, fd.size, fd.size_unit, fd.status, fd.soil_type, fd.farm_id, fd.owner_farm_id,
	       ofd.id, ofd.name, ofd.size, ofd.size_unit, ofd.status, ofd.soil_type, ofd.farm_id, ofd.owner_farm_id
	FROM farms f
	LEFT JOIN users u ON f.owner_id = u.id
	LEFT JOIN farm_managers fm ON f.id = fm.farm_id
	LEFT JOIN users mu ON fm.user_id = mu.id
	LEFT JOIN fields fd ON f.id = fd.farm_id
	LEFT JOIN fields ofd ON f.id = ofd.owner_farm_id`

func (r *farmGraphRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) []*types.FarmInfo {
	query := farmListQuery + `
	WHERE f.owner_id = $1
	ORDER BY f.created_at, f.id`
	return r.getFarms(ctx, query, ownerID, "GetByOwner")
}

func (r *farmGraphRepo) GetByManager(ctx context.Context, managerID uuid.UUID) []*types.FarmInfo {
	query := farmListQuery + `
	WHERE fm.user_id = $1
	ORDER BY f.created_at, f.id`
	return r.getFarms(ctx, query, managerID, "GetByManager")
}

func (r *farmGraphRepo) getFarms(ctx context.Context, query string, arg any, method string) []*types.FarmInfo {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		r.log.Error("querying farms", "method", method, "error", err)
		return []*types.FarmInfo{}
	}
	defer rows.Close()

	joined := []farmJoinRow{}
	for rows.Next() {
		var (
			row                  farmJoinRow
			ownerID              *uuid.UUID
			ownerName, ownerMail *string
			mgrID                *uuid.UUID
			mgrAssigned          *time.Time
			mgrName, mgrMail     *string
			fd                   fieldCols
			ofd                  fieldCols
		)
		dest := []any{
			&row.Farm.ID, &row.Farm.Name, &row.Farm.Location, &row.Farm.OwnerID,
			&row.Farm.CreatedAt, &row.Farm.UpdatedAt, &row.Farm.CreatedBy, &row.Farm.UpdatedBy,
			&ownerID, &ownerName, &ownerMail,
			&mgrID, &mgrAssigned, &mgrName, &mgrMail,
		}
		dest = append(dest, fd.dest()...)
		dest = append(dest, ofd.dest()...)
		if err := rows.Scan(dest...); err != nil {
			r.log.Error("scanning farm row", "method", method, "error", err)
			return []*types.FarmInfo{}
		}
		if ownerID != nil {
			row.Owner = types.FarmPerson{UserID: *ownerID, Name: orZero(ownerName), Email: orZero(ownerMail)}
		}
		if mgrID != nil {
			row.Manager = &types.FarmManagerInfo{
				UserID:     *mgrID,
				Name:       orZero(mgrName),
				Email:      orZero(mgrMail),
				AssignedAt: orZero(mgrAssigned),
			}
		}
		row.Field = fd.field()
		row.OwnedField = ofd.field()
		joined = append(joined, row)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("iterating farm rows", "method", method, "error", err)
		return []*types.FarmInfo{}
	}
	return foldFarmRows(joined)
}

// GetFieldInfo loads one field with its current farm, its owner farm
// and the full cultivation history, each cultivation carrying the farm
// that ran it.
func (r *farmGraphRepo) GetFieldInfo(ctx context.Context, fieldID uuid.UUID) *types.FieldInfo {
	query := `
	SELECT fl.id, fl.name, fl.size, fl.size_unit, fl.status, fl.soil_type, fl.farm_id, fl.owner_farm_id,
	       cf.id, cf.name, cf.location, cf.owner_id, cf.created_at, cf.updated_at, cf.created_by, cf.updated_by,
	       owf.id, owf.name, owf.location, owf.owner_id, owf.created_at, owf.updated_at, owf.created_by, owf.updated_by,
	       fc.id, fc.crop, fc.expected_yield, fc.actual_yield, fc.yield_unit, fc.status, fc.planting_date, fc.harvest_date, fc.field_id, fc.farm_id,
	       hf.id, hf.name, hf.location, hf.owner_id, hf.created_at, hf.updated_at, hf.created_by, hf.updated_by
	FROM fields fl
	LEFT JOIN farms cf ON fl.farm_id = cf.id
	LEFT JOIN farms owf ON fl.owner_farm_id = owf.id
	LEFT JOIN field_cultivations fc ON fl.id = fc.field_id
	LEFT JOIN farms hf ON fc.farm_id = hf.id
	WHERE fl.id = $1
	ORDER BY fc.planting_date, fc.id`

	rows, err := r.pool.Query(ctx, query, fieldID)
	if err != nil {
		r.log.Error("querying field info", "fieldID", fieldID, "error", err)
		return nil
	}
	defer rows.Close()

	joined := []fieldJoinRow{}
	for rows.Next() {
		var (
			row  fieldJoinRow
			cf   farmCols
			owf  farmCols
			cult cultivationCols
			hf   farmCols
		)
		dest := []any{
			&row.Field.ID, &row.Field.Name, &row.Field.Size, &row.Field.SizeUnit,
			&row.Field.Status, &row.Field.SoilType, &row.Field.FarmID, &row.Field.OwnerFarmID,
		}
		dest = append(dest, cf.dest()...)
		dest = append(dest, owf.dest()...)
		dest = append(dest, cult.dest()...)
		dest = append(dest, hf.dest()...)
		if err := rows.Scan(dest...); err != nil {
			r.log.Error("scanning field row", "fieldID", fieldID, "error", err)
			return nil
		}
		row.CurrentFarm = cf.farm()
		row.OwnerFarm = owf.farm()
		row.Cultivation = cult.cultivation()
		row.CultivatedFarm = hf.farm()
		joined = append(joined, row)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("iterating field rows", "fieldID", fieldID, "error", err)
		return nil
	}

	infos := foldFieldRows(joined)
	if len(infos) == 0 {
		return nil
	}
	return infos[0]
}

func (r *farmGraphRepo) GetFieldCultivations(ctx context.Context, fieldID uuid.UUID) []types.CultivationInfo {
	query := `
	SELECT fc.id, fc.crop, fc.expected_yield, fc.actual_yield, fc.yield_unit, fc.status, fc.planting_date, fc.harvest_date, fc.field_id, fc.farm_id,
	       fl.id, fl.name, fl.size, fl.size_unit, fl.status, fl.soil_type, fl.farm_id, fl.owner_farm_id,
	       fm.id, fm.name, fm.location, fm.owner_id, fm.created_at, fm.updated_at, fm.created_by, fm.updated_by
	FROM field_cultivations fc
	INNER JOIN fields fl ON fl.id = fc.field_id
	INNER JOIN farms fm ON fm.id = fc.farm_id
	WHERE fc.field_id = $1
	ORDER BY fc.planting_date, fc.id`

	rows, err := r.pool.Query(ctx, query, fieldID)
	if err != nil {
		r.log.Error("querying field cultivations", "fieldID", fieldID, "error", err)
		return []types.CultivationInfo{}
	}
	defer rows.Close()

	cultivations := []types.CultivationInfo{}
	for rows.Next() {
		var (
			info types.CultivationInfo
			fld  types.Field
			farm types.Farm
		)
		err := rows.Scan(
			&info.ID, &info.Crop, &info.ExpectedYield, &info.ActualYield, &info.YieldUnit,
			&info.Status, &info.PlantingDate, &info.HarvestDate, &info.FieldID, &info.FarmID,
			&fld.ID, &fld.Name, &fld.Size, &fld.SizeUnit, &fld.Status, &fld.SoilType, &fld.FarmID, &fld.OwnerFarmID,
			&farm.ID, &farm.Name, &farm.Location, &farm.OwnerID, &farm.CreatedAt, &farm.UpdatedAt, &farm.CreatedBy, &farm.UpdatedBy,
		)
		if err != nil {
			r.log.Error("scanning cultivation row", "fieldID", fieldID, "error", err)
			return []types.CultivationInfo{}
		}
		info.Field = &fld
		info.CultivatedFarm = &farm
		cultivations = append(cultivations, info)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("iterating cultivation rows", "fieldID", fieldID, "error", err)
		return []types.CultivationInfo{}
	}
	return cultivations
}

func (r *farmGraphRepo) readFarmRow(results pgx.BatchResults) (*types.Farm, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	var farm types.Farm
	err = rows.Scan(&farm.ID, &farm.Name, &farm.Location, &farm.OwnerID,
		&farm.CreatedAt, &farm.UpdatedAt, &farm.CreatedBy, &farm.UpdatedBy)
	if err != nil {
		return nil, err
	}
	rows.Close()
	return &farm, rows.Err()
}

func (r *farmGraphRepo) readManagerRows(results pgx.BatchResults) ([]types.FarmManager, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	managers := []types.FarmManager{}
	for rows.Next() {
		var m types.FarmManager
		if err := rows.Scan(&m.FarmID, &m.UserID, &m.AssignedAt); err != nil {
			return nil, err
		}
		managers = append(managers, m)
	}
	return managers, rows.Err()
}

func (r *farmGraphRepo) readPersonRow(results pgx.BatchResults) (*types.FarmPerson, error) {
	people, err := r.readPersonRows(results)
	if err != nil || len(people) == 0 {
		return nil, err
	}
	return &people[0], nil
}

func (r *farmGraphRepo) readPersonRows(results pgx.BatchResults) ([]types.FarmPerson, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	people := []types.FarmPerson{}
	for rows.Next() {
		var p types.FarmPerson
		if err := rows.Scan(&p.UserID, &p.Name, &p.Email); err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (r *farmGraphRepo) readFieldRows(results pgx.BatchResults) ([]types.Field, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	fields := []types.Field{}
	for rows.Next() {
		var f types.Field
		err := rows.Scan(&f.ID, &f.Name, &f.Size, &f.SizeUnit,
			&f.Status, &f.SoilType, &f.FarmID, &f.OwnerFarmID)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

// farmCols, fieldCols and cultivationCols hold the nullable side of a
// LEFT JOIN. All columns scan into pointers; a nil id means the join
// produced no row.

type farmCols struct {
	ID        *uuid.UUID
	Name      *string
	Location  *string
	OwnerID   *uuid.UUID
	CreatedAt *time.Time
	UpdatedAt *time.Time
	CreatedBy *uuid.UUID
	UpdatedBy *uuid.UUID
}

func (c *farmCols) dest() []any {
	return []any{&c.ID, &c.Name, &c.Location, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy}
}

func (c *farmCols) farm() *types.Farm {
	if c.ID == nil {
		return nil
	}
	return &types.Farm{
		ID:        *c.ID,
		Name:      orZero(c.Name),
		Location:  orZero(c.Location),
		OwnerID:   orZero(c.OwnerID),
		CreatedAt: orZero(c.CreatedAt),
		UpdatedAt: c.UpdatedAt,
		CreatedBy: orZero(c.CreatedBy),
		UpdatedBy: c.UpdatedBy,
	}
}

type fieldCols struct {
	ID          *uuid.UUID
	Name        *string
	Size        *float64
	SizeUnit    *string
	Status      *int16
	SoilType    *int16
	FarmID      *uuid.UUID
	OwnerFarmID *uuid.UUID
}

func (c *fieldCols) dest() []any {
	return []any{&c.ID, &c.Name, &c.Size, &c.SizeUnit, &c.Status, &c.SoilType, &c.FarmID, &c.OwnerFarmID}
}

func (c *fieldCols) field() *types.Field {
	if c.ID == nil {
		return nil
	}
	return &types.Field{
		ID:          *c.ID,
		Name:        orZero(c.Name),
		Size:        orZero(c.Size),
		SizeUnit:    orZero(c.SizeUnit),
		Status:      types.FieldStatus(orZero(c.Status)),
		SoilType:    types.SoilType(orZero(c.SoilType)),
		FarmID:      orZero(c.FarmID),
		OwnerFarmID: orZero(c.OwnerFarmID),
	}
}

type cultivationCols struct {
	ID            *uuid.UUID
	Crop          *string
	ExpectedYield *float64
	ActualYield   *float64
	YieldUnit     *string
	Status        *int16
	PlantingDate  *time.Time
	HarvestDate   *time.Time
	FieldID       *uuid.UUID
	FarmID        *uuid.UUID
}

func (c *cultivationCols) dest() []any {
	return []any{&c.ID, &c.Crop, &c.ExpectedYield, &c.ActualYield, &c.YieldUnit,
		&c.Status, &c.PlantingDate, &c.HarvestDate, &c.FieldID, &c.FarmID}
}

func (c *cultivationCols) cultivation() *types.FieldCultivation {
	if c.ID == nil {
		return nil
	}
	return &types.FieldCultivation{
		ID:            *c.ID,
		Crop:          orZero(c.Crop),
		ExpectedYield: c.ExpectedYield,
		ActualYield:   c.ActualYield,
		YieldUnit:     orZero(c.YieldUnit),
		Status:        types.CultivationStatus(orZero(c.Status)),
		PlantingDate:  orZero(c.PlantingDate),
		HarvestDate:   c.HarvestDate,
		FieldID:       orZero(c.FieldID),
		FarmID:        orZero(c.FarmID),
	}
}

func orZero[T any](p *T) T {
	var zero T
	if p != nil {
		return *p
	}
	return zero
}
