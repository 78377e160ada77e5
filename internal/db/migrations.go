package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('admin', 'driver', 'parent');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_status') THEN
			CREATE TYPE vehicle_status AS ENUM ('active', 'maintenance');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'trip_status') THEN
			CREATE TYPE trip_status AS ENUM ('scheduled', 'active', 'completed', 'cancelled');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'booking_status') THEN
			CREATE TYPE booking_status AS ENUM ('pending', 'confirmed', 'cancelled', 'completed');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'incident_severity') THEN
			CREATE TYPE incident_severity AS ENUM ('low', 'medium', 'high', 'critical');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		image TEXT,
		role user_role NOT NULL DEFAULT 'parent',
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_users_role ON users (role);`,
	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		parent_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		school_name VARCHAR(255) NOT NULL,
		grade VARCHAR(32) NOT NULL,
		photo_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_students_parent_id ON students (parent_id);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		license_plate VARCHAR(32) NOT NULL UNIQUE,
		bus_number VARCHAR(32) NOT NULL,
		capacity INTEGER NOT NULL CHECK (capacity > 0),
		model VARCHAR(64),
		year INTEGER,
		status vehicle_status NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS routes (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		start_point VARCHAR(255) NOT NULL,
		end_point VARCHAR(255) NOT NULL,
		estimated_duration INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS stops (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		route_id UUID NOT NULL REFERENCES routes(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		order_index INTEGER NOT NULL,
		estimated_time VARCHAR(16),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_stops_route_order ON stops (route_id, order_index);`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		route_id UUID NOT NULL REFERENCES routes(id),
		driver_id UUID REFERENCES users(id),
		vehicle_id UUID REFERENCES vehicles(id),
		date VARCHAR(10) NOT NULL,
		scheduled_start_time VARCHAR(5),
		status trip_status NOT NULL DEFAULT 'scheduled',
		current_lat DOUBLE PRECISION,
		current_lng DOUBLE PRECISION,
		started_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_route_id ON trips (route_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_driver_id ON trips (driver_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_date ON trips (date);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_status ON trips (status);`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id),
		student_id UUID NOT NULL REFERENCES students(id),
		parent_id UUID NOT NULL REFERENCES users(id),
		pickup_stop_id UUID REFERENCES stops(id),
		dropoff_stop_id UUID REFERENCES stops(id),
		status booking_status NOT NULL DEFAULT 'pending',
		seat_number INTEGER,
		boarded_at TIMESTAMPTZ,
		dropped_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_trip_id ON bookings (trip_id);`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_parent_id ON bookings (parent_id);`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_bookings_trip_student_live
		ON bookings (trip_id, student_id)
		WHERE status <> 'cancelled';`,
	`CREATE TABLE IF NOT EXISTS incidents (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id),
		reported_by_id UUID NOT NULL REFERENCES users(id),
		description TEXT NOT NULL,
		severity incident_severity NOT NULL DEFAULT 'low',
		location TEXT,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		resolved_at TIMESTAMPTZ,
		reported_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_incidents_trip_id ON incidents (trip_id);`,
	`CREATE INDEX IF NOT EXISTS idx_incidents_reported_by_id ON incidents (reported_by_id);`,
	`CREATE INDEX IF NOT EXISTS idx_incidents_reported_at ON incidents (reported_at);`,
	`CREATE TABLE IF NOT EXISTS trip_status_log (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		trip_id UUID NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		old_status trip_status,
		new_status trip_status NOT NULL,
		note TEXT,
		changed_by UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trip_status_log_trip_id ON trip_status_log (trip_id);`,
	`CREATE TABLE IF NOT EXISTS booking_status_log (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		booking_id UUID NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
		old_status booking_status,
		new_status booking_status NOT NULL,
		note TEXT,
		changed_by UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_booking_status_log_booking_id ON booking_status_log (booking_id);`,
	`CREATE OR REPLACE FUNCTION set_row_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_users_updated_at') THEN
			CREATE TRIGGER trg_users_updated_at
				BEFORE UPDATE ON users
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_students_updated_at') THEN
			CREATE TRIGGER trg_students_updated_at
				BEFORE UPDATE ON students
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_vehicles_updated_at') THEN
			CREATE TRIGGER trg_vehicles_updated_at
				BEFORE UPDATE ON vehicles
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_routes_updated_at') THEN
			CREATE TRIGGER trg_routes_updated_at
				BEFORE UPDATE ON routes
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_trips_updated_at') THEN
			CREATE TRIGGER trg_trips_updated_at
				BEFORE UPDATE ON trips
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_bookings_updated_at') THEN
			CREATE TRIGGER trg_bookings_updated_at
				BEFORE UPDATE ON bookings
				FOR EACH ROW
				EXECUTE PROCEDURE set_row_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
