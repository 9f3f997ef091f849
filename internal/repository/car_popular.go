package repository

import (
	"context"
	"database/sql"
)

// CarsWithOrders returns every car that has at least one order, ranked
// by order count descending. The image join multiplies rows, so the
// count is taken over distinct order ids.
func (r *CarRepo) CarsWithOrders(ctx context.Context) ([]PopularCar, error) {
	const query = `SELECT
			c.id, c.brand, c.model, c.year, c.price, c.dealer_id, c.type_id,
			vt.type_name,
			d.name,
			COUNT(DISTINCT o.id) AS order_count,
			` + imageData + ` AS image_data
		FROM cars c
		LEFT JOIN vehicle_types vt ON c.type_id = vt.id
		LEFT JOIN dealers d ON c.dealer_id = d.id
		LEFT JOIN orders o ON c.id = o.car_id
		LEFT JOIN images i ON c.id = i.car_id
		GROUP BY c.id
		HAVING order_count > 0
		ORDER BY order_count DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PopularCar{}
	for rows.Next() {
		var (
			car              PopularCar
			typeName, dealer sql.NullString
			images           sql.NullString
		)
		if err := rows.Scan(
			&car.ID, &car.Brand, &car.Model, &car.Year, &car.Price, &car.DealerID, &car.TypeID,
			&typeName, &dealer, &car.OrderCount, &images,
		); err != nil {
			return nil, err
		}
		car.VehicleType = typeName.String
		car.Dealer = DealerName{Name: dealer.String}
		car.Images = parseImageData(images)
		out = append(out, car)
	}
	return out, rows.Err()
}

// TopPriced returns up to limit cars ordered by price descending with
// a zero order count. It backs the padding side of the popular feed.
func (r *CarRepo) TopPriced(ctx context.Context, limit int) ([]PopularCar, error) {
	const query = `SELECT
			c.id, c.brand, c.model, c.year, c.price, c.dealer_id, c.type_id,
			vt.type_name,
			d.name,
			` + imageData + ` AS image_data
		FROM cars c
		LEFT JOIN vehicle_types vt ON c.type_id = vt.id
		LEFT JOIN dealers d ON c.dealer_id = d.id
		LEFT JOIN images i ON c.id = i.car_id
		GROUP BY c.id
		ORDER BY c.price DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PopularCar{}
	for rows.Next() {
		var (
			car              PopularCar
			typeName, dealer sql.NullString
			images           sql.NullString
		)
		if err := rows.Scan(
			&car.ID, &car.Brand, &car.Model, &car.Year, &car.Price, &car.DealerID, &car.TypeID,
			&typeName, &dealer, &images,
		); err != nil {
			return nil, err
		}
		car.VehicleType = typeName.String
		car.Dealer = DealerName{Name: dealer.String}
		car.Images = parseImageData(images)
		out = append(out, car)
	}
	return out, rows.Err()
}

// Newest returns the most recently added cars (largest ids first) as
// compact cards for the homepage.
func (r *CarRepo) Newest(ctx context.Context, limit int) ([]CarCard, error) {
	const query = `SELECT
			c.id, c.brand, c.model, c.year, c.price, c.dealer_id, c.type_id,
			vt.type_name,
			d.name,
			` + imageData + ` AS image_data
		FROM cars c
		LEFT JOIN vehicle_types vt ON c.type_id = vt.id
		LEFT JOIN dealers d ON c.dealer_id = d.id
		LEFT JOIN images i ON c.id = i.car_id
		GROUP BY c.id
		ORDER BY c.id DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CarCard{}
	for rows.Next() {
		var (
			card             CarCard
			typeName, dealer sql.NullString
			images           sql.NullString
		)
		if err := rows.Scan(
			&card.ID, &card.Brand, &card.Model, &card.Year, &card.Price, &card.DealerID, &card.TypeID,
			&typeName, &dealer, &images,
		); err != nil {
			return nil, err
		}
		card.VehicleType = typeName.String
		card.Dealer = DealerName{Name: dealer.String}
		card.Images = parseImageData(images)
		out = append(out, card)
	}
	return out, rows.Err()
}
