package model

func str(s string) *string { return &s }

// Seed returns the demo catalogue. Movies and directors are shared between
// actors; Clint Eastwood is both an actor and the director of one of his
// own movies.
func Seed() []*Actor {
	genres := []Genre{
		{Name: "Action"},
		{Name: "Romantic"},
		{Name: "Fantasy"},
		{Name: "Drama"},
		{Name: "Science fiction"},
		{Name: "Dramedy"},
		{Name: "Fairy tale"},
		{Name: "Western"},
		{Name: "Comedy"},
		{Name: "Adventure"},
	}
	spectacles := []*Spectacle{
		{Name: "Mowgli", Genres: []Genre{genres[6], genres[9]}},
		{Name: "Caidashi", Genres: []Genre{genres[5]}},
		{Name: "The Master and Margarita", Genres: []Genre{genres[3]}},
		{Name: "Forever alive", Genres: []Genre{genres[3]}},
	}
	eastwood := &Actor{Person: Person{FirstName: "Clint", LastName: "Eastwood", BirthYear: 1930}}
	directors := []Human{
		eastwood,
		&Person{FirstName: "Gregor", LastName: "Verbinski", Patronymic: str("Justin"), BirthYear: 1963},
		&Person{FirstName: "Peter", LastName: "Jackson", Patronymic: str("Robert"), BirthYear: 1961},
		&Person{FirstName: "Martin", LastName: "Scorsese", Patronymic: str("Charles"), BirthYear: 1942},
		&Person{FirstName: "James", LastName: "Cameron", Patronymic: str("Francis"), BirthYear: 1954},
		&Person{FirstName: "Yuri", LastName: "Illienko", Patronymic: str("Herasymovych"), BirthYear: 1936},
		&Person{FirstName: "Sergio", LastName: "Leone", BirthYear: 1929},
	}
	movies := []*Movie{
		{Name: "The White Bird Marked with Black", Year: 1971, Director: directors[5], Genres: []Genre{genres[3]}},
		{Name: "Bronco Billy", Year: 1980, Director: directors[0], Genres: []Genre{genres[7]}},
		{Name: "Titanic", Year: 1997, Director: directors[4], Genres: []Genre{genres[1]}},
		{Name: "The Wolf of Wall Street", Year: 2013, Director: directors[3], Genres: []Genre{genres[3]}},
		{Name: "Dollars Trilogy", Year: 1966, Director: directors[6], Genres: []Genre{genres[7]}},
		{Name: "The Lord of the Rings: The Fellowship of the Ring", Year: 2001, Director: directors[2], Genres: []Genre{genres[4]}},
		{Name: "Pirates of the Caribbean: The Curse of the Black Pearl", Year: 2003, Director: directors[1], Genres: []Genre{genres[0]}},
		{Name: "The Mexican", Year: 2001, Director: directors[1], Genres: []Genre{genres[9], genres[8]}},
	}
	characters := []TheatricalCharacter{
		{Name: "The Good, the Bad, and the Very Ugly"},
		{Name: "Typical western cowboy"},
		{Name: "Many different characters"},
		{Name: "Negative characters"},
		{Name: "Hero lover"},
		{Name: "Villain"},
		{Name: "Hero"},
		{Name: "Villain"},
		{Name: "Roles of an acute plan"},
		{Name: "Cowboy girlfriend"},
	}
	actors := []*Actor{
		{
			Person:               Person{FirstName: "Sandra", LastName: "Anderson", Patronymic: str("Louise"), BirthYear: 1944},
			TheatricalCharacters: []TheatricalCharacter{characters[0], characters[8], characters[9]},
			Filmography: []FilmographyItem{
				{Performance: movies[1], Role: "Antoinette Lily"},
			},
		},
		{
			Person:               Person{FirstName: "Ella", LastName: "Sanko", Patronymic: str("Ivanivna"), BirthYear: 1947},
			TheatricalCharacters: []TheatricalCharacter{characters[2]},
			Filmography: []FilmographyItem{
				{Performance: spectacles[0], Role: "Raksha", IsMain: true},
				{Performance: spectacles[1], Role: "Paraska"},
			},
		},
		{
			Person:               Person{FirstName: "Bohdan", LastName: "Stupka", Patronymic: str("Sylvestrovych"), BirthYear: 1941},
			TheatricalCharacters: []TheatricalCharacter{characters[3]},
			Filmography: []FilmographyItem{
				{Performance: spectacles[2], Role: "Jeshua", IsMain: true},
				{Performance: movies[0], Role: "Orest", IsMain: true},
			},
		},
		{
			Person:               Person{FirstName: "William", LastName: "Pitt", Patronymic: str("Bradley"), BirthYear: 1963},
			TheatricalCharacters: []TheatricalCharacter{characters[4]},
			Filmography: []FilmographyItem{
				{Performance: movies[7], Role: "Jerry Welbach", IsMain: true},
			},
		},
		{
			Person:               Person{FirstName: "Leonardo", LastName: "DiCaprio", Patronymic: str("Wilhelm"), BirthYear: 1974},
			TheatricalCharacters: []TheatricalCharacter{characters[5]},
			Filmography: []FilmographyItem{
				{Performance: movies[2], Role: "Jack Dawson", IsMain: true},
				{Performance: movies[3], Role: "Jordan Belfort", IsMain: true},
			},
		},
		{
			Person:               Person{FirstName: "Orlando", LastName: "Bloom", BirthYear: 1977},
			TheatricalCharacters: []TheatricalCharacter{characters[6]},
			Filmography: []FilmographyItem{
				{Performance: movies[5], Role: "Legolas Greenleaf", IsMain: true},
				{Performance: movies[6], Role: "Will Turner"},
			},
		},
		{
			Person:               Person{FirstName: "Johnny", LastName: "Depp", BirthYear: 1963},
			TheatricalCharacters: []TheatricalCharacter{characters[7]},
			Filmography: []FilmographyItem{
				{Performance: movies[6], Role: "Jack Sparrow", IsMain: true},
			},
		},
		{
			Person: Person{FirstName: "Volodymyr", LastName: "Velyanyk", Patronymic: str("Volodymyrovych"), BirthYear: 1970},
			Filmography: []FilmographyItem{
				{Performance: spectacles[1], Role: "Omelko", IsMain: true},
			},
		},
		{
			Person: Person{FirstName: "Vasyl", LastName: "Kukharsky", BirthYear: 1981},
			Filmography: []FilmographyItem{
				{Performance: spectacles[3], Role: "Borys", IsMain: true},
				{Performance: spectacles[3], Role: "Mark", IsMain: true},
			},
		},
	}
	eastwood.Filmography = []FilmographyItem{
		{Performance: movies[1], Role: `Billy "Bronco Billy" McCoy`, IsMain: true},
		{Performance: movies[4], Role: "Man with No Name", IsMain: true},
	}
	eastwood.TheatricalCharacters = []TheatricalCharacter{characters[1]}
	return append(actors, eastwood)
}
