package productrepo

import (
	"time"

	"goinventory/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// DefaultProducts é o catálogo inicial gravado na primeira execução.
// Os CategoryID apontam para categoryrepo.DefaultCategories.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Laptop HP Pavilion",
			Description: "Laptop para oficina con procesador Intel i5",
			CategoryID:  "1",
			Price:       1200000,
			Stock:       15,
			MinStock:    5,
			SKU:         "LAP-HP-001",
			Barcode:     "1234567890123",
			Image:       "https://placehold.co/400x300?text=Laptop+HP+Pavilion",
			Status:      domain.StatusActive,
			CreatedAt:   day(2024, time.January, 15),
			UpdatedAt:   day(2024, time.January, 15),
		},
		{
			ID:          "2",
			Name:        "Mouse Inalámbrico Logitech",
			Description: "Mouse ergonómico inalámbrico con precisión óptica",
			CategoryID:  "2",
			Price:       85000,
			Stock:       3,
			MinStock:    10,
			SKU:         "MOU-LOG-002",
			Barcode:     "2345678901234",
			Image:       "https://placehold.co/400x300?text=Mouse+Logitech+inalambrico+ergonomico+negro",
			Status:      domain.StatusActive,
			CreatedAt:   day(2024, time.January, 20),
			UpdatedAt:   day(2024, time.January, 20),
		},
		{
			ID:          "3",
			Name:        `Monitor Samsung 24"`,
			Description: "Monitor LED Full HD 24 pulgadas para oficina",
			CategoryID:  "1",
			Price:       450000,
			Stock:       8,
			MinStock:    3,
			SKU:         "MON-SAM-003",
			Barcode:     "3456789012345",
			Image:       "https://placehold.co/400x300?text=Monitor+Samsung+24",
			Status:      domain.StatusActive,
			CreatedAt:   day(2024, time.January, 25),
			UpdatedAt:   day(2024, time.January, 25),
		},
		{
			ID:          "4",
			Name:        "Teclado Mecánico RGB",
			Description: "Teclado mecánico gaming con iluminación RGB",
			CategoryID:  "2",
			Price:       150000,
			Stock:       0,
			MinStock:    5,
			SKU:         "TEC-RGB-004",
			Barcode:     "4567890123456",
			Image:       "https://placehold.co/400x300?text=Teclado+Mecanico+RGB",
			Status:      domain.StatusActive,
			CreatedAt:   day(2024, time.February, 1),
			UpdatedAt:   day(2024, time.February, 1),
		},
		{
			ID:          "5",
			Name:        "Impresora Canon Pixma",
			Description: "Impresora multifuncional de tinta para oficina",
			CategoryID:  "3",
			Price:       280000,
			Stock:       12,
			MinStock:    4,
			SKU:         "IMP-CAN-005",
			Barcode:     "5678901234567",
			Image:       "https://placehold.co/400x300?text=Impresora+Canon+Pixma",
			Status:      domain.StatusActive,
			CreatedAt:   day(2024, time.February, 5),
			UpdatedAt:   day(2024, time.February, 5),
		},
	}
}
