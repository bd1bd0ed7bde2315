package bookstore

import "github.com/mrlokans/bookshelf/internal/entities"

// SeedData returns example books used to pre-populate a demo deployment.
func SeedData() []entities.BookInput {
	return []entities.BookInput{
		{
			Name:      "The Go Programming Language",
			Year:      2015,
			Author:    "Alan A. A. Donovan",
			Summary:   "A practical introduction to Go.",
			Publisher: "Addison-Wesley",
			PageCount: 380,
			ReadPage:  380,
			Reading:   false,
		},
		{
			Name:      "Concurrency in Go",
			Year:      2017,
			Author:    "Katherine Cox-Buday",
			Summary:   "Tools and techniques for concurrent Go.",
			Publisher: "O'Reilly Media",
			PageCount: 238,
			ReadPage:  120,
			Reading:   true,
		},
		{
			Name:      "Laskar Pelangi",
			Year:      2005,
			Author:    "Andrea Hirata",
			Summary:   "Sepuluh anak Belitung dan sekolah mereka.",
			Publisher: "Bentang Pustaka",
			PageCount: 529,
			ReadPage:  0,
			Reading:   false,
		},
	}
}
