package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Leplia/Diller-shop/internal/model"
)

// CarRepo provides catalog queries and admin CRUD for cars and their
// images. Car create/delete touch two tables and run inside explicit
// transactions; everything else is a single autocommit statement.
type CarRepo struct {
	db *sql.DB
}

// NewCarRepo returns a CarRepo bound to the given database.
func NewCarRepo(db *sql.DB) *CarRepo { return &CarRepo{db: db} }

// ImageRef is the {image_url, description} pair embedded in catalog
// listings. Full image rows (with ids) appear only on the detail view.
type ImageRef struct {
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// DealerContact is the dealer subobject embedded in list and detail
// responses.
type DealerContact struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// DealerName is the reduced dealer subobject used by the homepage
// feeds (popular and new cars).
type DealerName struct {
	Name string `json:"name"`
}

// CarListItem is one row of GET /api/cars.
type CarListItem struct {
	model.Car
	VehicleType string        `json:"vehicle_type"`
	Dealer      DealerContact `json:"dealer"`
	Images      []ImageRef    `json:"images"`
}

// CarCard is the compact car representation used by the homepage
// feeds: full car fields, type name, dealer name and images.
type CarCard struct {
	model.Car
	VehicleType string     `json:"vehicle_type"`
	Dealer      DealerName `json:"dealer"`
	Images      []ImageRef `json:"images"`
}

// PopularCar is a CarCard annotated with the number of orders that
// earned the car its ranking slot. Padded entries carry zero.
type PopularCar struct {
	CarCard
	OrderCount int64 `json:"order_count"`
}

// CarDetail is the GET /api/cars/:id response: car fields plus dealer
// contact data and the full image rows.
type CarDetail struct {
	model.Car
	VehicleType string        `json:"vehicle_type"`
	Dealer      DealerContact `json:"dealer"`
	Images      []model.Image `json:"images"`
}

// CarFilter carries the typed query parameters of GET /api/cars.
// Predicates are composed with parameter binding only; SortBy and
// Order are resolved against whitelists, never interpolated from the
// request.
type CarFilter struct {
	Brand    string
	Model    string
	MinPrice *float64
	MaxPrice *float64
	MinYear  *int
	MaxYear  *int
	TypeID   uint64
	DealerID uint64
	SortBy   string
	Order    string
	Limit    int
	Offset   int
}

// sortColumns maps accepted sortBy values to real columns. Anything
// else falls back to c.id.
var sortColumns = map[string]string{
	"id":    "c.id",
	"brand": "c.brand",
	"model": "c.model",
	"year":  "c.year",
	"price": "c.price",
}

func (f CarFilter) orderClause() string {
	col, ok := sortColumns[strings.ToLower(f.SortBy)]
	if !ok {
		col = "c.id"
	}
	dir := "ASC"
	if strings.EqualFold(f.Order, "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}

// imageData packs a car's images into one column so listings stay a
// single query: url and description joined by '|||', rows by ':::'.
const imageData = `GROUP_CONCAT(CONCAT(i.image_url, '|||', IFNULL(i.description, '')) SEPARATOR ':::')`

// parseImageData unpacks the GROUP_CONCAT column back into image refs.
func parseImageData(data sql.NullString) []ImageRef {
	refs := []ImageRef{}
	if !data.Valid || data.String == "" {
		return refs
	}
	for _, pair := range strings.Split(data.String, ":::") {
		url, desc, _ := strings.Cut(pair, "|||")
		refs = append(refs, ImageRef{ImageURL: url, Description: desc})
	}
	return refs
}

// Search returns filtered, sorted, paginated catalog rows joined with
// dealer, vehicle-type and image data.
func (r *CarRepo) Search(ctx context.Context, f CarFilter) ([]CarListItem, error) {
	where := []string{}
	args := []any{}

	if f.Brand != "" {
		where = append(where, "c.brand LIKE ?")
		args = append(args, "%"+f.Brand+"%")
	}
	if f.Model != "" {
		where = append(where, "c.model LIKE ?")
		args = append(args, "%"+f.Model+"%")
	}
	if f.MinPrice != nil {
		where = append(where, "c.price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where = append(where, "c.price <= ?")
		args = append(args, *f.MaxPrice)
	}
	if f.MinYear != nil {
		where = append(where, "c.year >= ?")
		args = append(args, *f.MinYear)
	}
	if f.MaxYear != nil {
		where = append(where, "c.year <= ?")
		args = append(args, *f.MaxYear)
	}
	if f.TypeID != 0 {
		where = append(where, "c.type_id = ?")
		args = append(args, f.TypeID)
	}
	if f.DealerID != 0 {
		where = append(where, "c.dealer_id = ?")
		args = append(args, f.DealerID)
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	query := `SELECT
			c.id, c.brand, c.model, c.year, c.price, c.dealer_id, c.type_id,
			vt.type_name,
			d.name, d.address, d.phone, d.email,
			` + imageData + ` AS image_data
		FROM cars c
		LEFT JOIN vehicle_types vt ON c.type_id = vt.id
		LEFT JOIN dealers d ON c.dealer_id = d.id
		LEFT JOIN images i ON c.id = i.car_id` +
		cond + `
		GROUP BY c.id
		ORDER BY ` + f.orderClause() + `
		LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CarListItem, 0, f.Limit)
	for rows.Next() {
		var (
			item                        CarListItem
			typeName                    sql.NullString
			name, address, phone, email sql.NullString
			images                      sql.NullString
		)
		if err := rows.Scan(
			&item.ID, &item.Brand, &item.Model, &item.Year, &item.Price, &item.DealerID, &item.TypeID,
			&typeName, &name, &address, &phone, &email, &images,
		); err != nil {
			return nil, err
		}
		item.VehicleType = typeName.String
		item.Dealer = DealerContact{
			Name:    name.String,
			Address: address.String,
			Phone:   phone.String,
			Email:   email.String,
		}
		item.Images = parseImageData(images)
		out = append(out, item)
	}
	return out, rows.Err()
}

// GetByID fetches one car with dealer contact data and its full image
// rows. Returns ErrNotFound when the id does not resolve.
func (r *CarRepo) GetByID(ctx context.Context, id uint64) (*CarDetail, error) {
	const carQuery = `SELECT
			c.id, c.brand, c.model, c.year, c.price, c.dealer_id, c.type_id,
			vt.type_name,
			d.name, d.address, d.phone, d.email
		FROM cars c
		LEFT JOIN vehicle_types vt ON c.type_id = vt.id
		LEFT JOIN dealers d ON c.dealer_id = d.id
		WHERE c.id = ?`

	var (
		detail                      CarDetail
		typeName                    sql.NullString
		name, address, phone, email sql.NullString
	)
	err := r.db.QueryRowContext(ctx, carQuery, id).Scan(
		&detail.ID, &detail.Brand, &detail.Model, &detail.Year, &detail.Price, &detail.DealerID, &detail.TypeID,
		&typeName, &name, &address, &phone, &email,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	detail.VehicleType = typeName.String
	detail.Dealer = DealerContact{
		Name:    name.String,
		Address: address.String,
		Phone:   phone.String,
		Email:   email.String,
	}

	images, err := r.imagesByCar(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Images = images
	return &detail, nil
}

func (r *CarRepo) imagesByCar(ctx context.Context, carID uint64) ([]model.Image, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, car_id, image_url, IFNULL(description, '') FROM images WHERE car_id = ?", carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Image{}
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.CarID, &img.ImageURL, &img.Description); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// CarInput carries the six required car fields of create/update.
type CarInput struct {
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Year     int     `json:"year"`
	Price    float64 `json:"price"`
	DealerID uint64  `json:"dealer_id"`
	TypeID   uint64  `json:"type_id"`
}

// CreatedCar is the POST /api/cars response: the inserted row plus its
// image refs.
type CreatedCar struct {
	model.Car
	Images []ImageRef `json:"images"`
}

// Create inserts a car and its images in one transaction and returns
// the stored row with images. A failed image insert rolls the car back.
func (r *CarRepo) Create(ctx context.Context, in CarInput, images []ImageRef) (*CreatedCar, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO cars (brand, model, year, price, dealer_id, type_id) VALUES (?, ?, ?, ?, ?, ?)",
		in.Brand, in.Model, in.Year, in.Price, in.DealerID, in.TypeID)
	if err != nil {
		return nil, err
	}
	carID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	for _, img := range images {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO images (car_id, image_url, description) VALUES (?, ?, ?)",
			carID, img.ImageURL, img.Description); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	created := &CreatedCar{
		Car: model.Car{
			ID:       uint64(carID),
			Brand:    in.Brand,
			Model:    in.Model,
			Year:     in.Year,
			Price:    in.Price,
			DealerID: in.DealerID,
			TypeID:   in.TypeID,
		},
		Images: images,
	}
	if created.Images == nil {
		created.Images = []ImageRef{}
	}
	return created, nil
}

// Update overwrites all car fields. Zero affected rows means the car
// does not exist; the updated plain row is read back on success.
func (r *CarRepo) Update(ctx context.Context, id uint64, in CarInput) (*model.Car, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE cars SET brand = ?, model = ?, year = ?, price = ?, dealer_id = ?, type_id = ? WHERE id = ?",
		in.Brand, in.Model, in.Year, in.Price, in.DealerID, in.TypeID, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	var car model.Car
	err = r.db.QueryRowContext(ctx,
		"SELECT id, brand, model, year, price, dealer_id, type_id FROM cars WHERE id = ?", id).
		Scan(&car.ID, &car.Brand, &car.Model, &car.Year, &car.Price, &car.DealerID, &car.TypeID)
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// Delete removes a car and its images in one transaction. ErrNotFound
// rolls back the already-deleted image rows.
func (r *CarRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM images WHERE car_id = ?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM cars WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// AddImages appends image rows to a car and returns the car's full
// image list afterwards.
func (r *CarRepo) AddImages(ctx context.Context, carID uint64, images []ImageRef) ([]model.Image, error) {
	for _, img := range images {
		if _, err := r.db.ExecContext(ctx,
			"INSERT INTO images (car_id, image_url, description) VALUES (?, ?, ?)",
			carID, img.ImageURL, img.Description); err != nil {
			return nil, err
		}
	}
	return r.imagesByCar(ctx, carID)
}

// DeleteImages removes every image of a car and reports how many rows
// went away.
func (r *CarRepo) DeleteImages(ctx context.Context, carID uint64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM images WHERE car_id = ?", carID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DealerOption is the {id, name} pair offered by the filter panel.
type DealerOption struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// FilterOptions collects the distinct brands, all vehicle types and
// all dealers for the catalog filter panel.
func (r *CarRepo) FilterOptions(ctx context.Context) ([]string, []model.VehicleType, []DealerOption, error) {
	brandRows, err := r.db.QueryContext(ctx, "SELECT DISTINCT brand FROM cars ORDER BY brand")
	if err != nil {
		return nil, nil, nil, err
	}
	defer brandRows.Close()
	brands := []string{}
	for brandRows.Next() {
		var b string
		if err := brandRows.Scan(&b); err != nil {
			return nil, nil, nil, err
		}
		brands = append(brands, b)
	}
	if err := brandRows.Err(); err != nil {
		return nil, nil, nil, err
	}

	typeRows, err := r.db.QueryContext(ctx, "SELECT id, type_name FROM vehicle_types ORDER BY type_name")
	if err != nil {
		return nil, nil, nil, err
	}
	defer typeRows.Close()
	types := []model.VehicleType{}
	for typeRows.Next() {
		var t model.VehicleType
		if err := typeRows.Scan(&t.ID, &t.TypeName); err != nil {
			return nil, nil, nil, err
		}
		types = append(types, t)
	}
	if err := typeRows.Err(); err != nil {
		return nil, nil, nil, err
	}

	dealerRows, err := r.db.QueryContext(ctx, "SELECT id, name FROM dealers ORDER BY name")
	if err != nil {
		return nil, nil, nil, err
	}
	defer dealerRows.Close()
	dealers := []DealerOption{}
	for dealerRows.Next() {
		var d DealerOption
		if err := dealerRows.Scan(&d.ID, &d.Name); err != nil {
			return nil, nil, nil, err
		}
		dealers = append(dealers, d)
	}
	return brands, types, dealers, dealerRows.Err()
}
