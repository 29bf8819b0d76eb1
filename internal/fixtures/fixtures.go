package fixtures

import (
	"time"

	"github.com/cudeca/eventos-seed/internal/model"
)

// Credentials returns the account the seeder registers and logs in with
func Credentials() model.Credentials {
	return model.Credentials{
		Name:     "Admin",
		Surname:  "Test",
		Email:    "admin@test.com",
		Password: "Password123!",
		Role:     "ADMIN",
	}
}

// Events returns the events the seeder creates, in creation order. Each call
// returns a fresh slice.
func Events() []model.Event {
	return []model.Event{
		{
			Title:       "Concierto Solidario de Primavera",
			Description: "Un evento musical único para celebrar la llegada de la primavera y recaudar fondos para nuestros cuidados paliativos. Contaremos con artistas locales e internacionales.",
			StartsAt:    utc(2026, time.April, 15, 20),
			EndsAt:      utc(2026, time.April, 15, 23),
			Venue:       "Auditorio Municipal de Benalmádena",
			Target:      model.Euros(5000),
			ImageURL:    "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?ixlib=rb-4.0.3&auto=format&fit=crop&w=1740&q=80",
		},
		{
			Title:       "Cena de Gala Benéfica",
			Description: "Disfruta de una velada elegante con cena de tres platos, música en vivo y subasta silenciosa. Todo lo recaudado irá destinado a la Fundación Cudeca.",
			StartsAt:    utc(2026, time.May, 20, 21),
			EndsAt:      utc(2026, time.May, 21, 1),
			Venue:       "Hotel Puente Romano, Marbella",
			Target:      model.Euros(15000),
			ImageURL:    "https://images.unsplash.com/photo-1519671902512-35c37c3a0931?ixlib=rb-4.0.3&auto=format&fit=crop&w=1740&q=80",
		},
		{
			Title:       "XI Marcha por la Vida",
			Description: "Únete a nuestra caminata anual solidaria. Recorrido familiar de 5km por el paseo marítimo. Camiseta y avituallamiento incluidos con la inscripción.",
			StartsAt:    utc(2026, time.June, 10, 10),
			EndsAt:      utc(2026, time.June, 10, 14),
			Venue:       "Paseo Marítimo de Fuengirola",
			Target:      model.Euros(8000),
			ImageURL:    "https://images.unsplash.com/photo-1552674605-db6ffd4facb5?ixlib=rb-4.0.3&auto=format&fit=crop&w=1740&q=80",
		},
	}
}

func utc(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}
