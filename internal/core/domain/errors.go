package domain

import "go.trai.ch/zerr"

var (
	// ErrTableNotFound is returned when a conversion source does not exist.
	ErrTableNotFound = zerr.New("conversion table not found")

	// ErrTableMalformed is returned when a conversion source cannot be parsed into a mapping of
	// units to mappings of target units and positive factors.
	ErrTableMalformed = zerr.New("malformed conversion table")

	// ErrNoConversionPath is returned when no directed path connects two units.
	ErrNoConversionPath = zerr.New("no conversion path")

	// ErrInvalidFactor is returned when a conversion factor is zero, negative, NaN or infinite.
	ErrInvalidFactor = zerr.New("conversion factor must be a finite positive number")

	// ErrFolderNotFound is returned when a folder does not exist at the requested location.
	ErrFolderNotFound = zerr.New("folder doesn't exist")

	// ErrFolderExists is returned when creating a folder whose name is already taken.
	ErrFolderExists = zerr.New("folder already exists")

	// ErrFolderNotEmpty is returned when deleting a folder that still has folders or recipes.
	ErrFolderNotEmpty = zerr.New("folder is not empty")

	// ErrAtRoot is returned when trying to go up from the root folder.
	ErrAtRoot = zerr.New("already at root directory")

	// ErrRecipeNotFound is returned when a recipe does not exist in the current folder.
	ErrRecipeNotFound = zerr.New("recipe doesn't exist")

	// ErrRecipeExists is returned when creating a recipe whose name is already taken.
	ErrRecipeExists = zerr.New("recipe already exists")

	// ErrInvalidName is returned when a folder or recipe name is empty or contains a slash.
	ErrInvalidName = zerr.New("invalid name")

	// ErrInvalidPrice is returned when a price record fails validation.
	ErrInvalidPrice = zerr.New("invalid price")

	// ErrInvalidSettings is returned when the loaded settings fail validation.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrStoreCreateFailed is returned when the data directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create data directory")

	// ErrStoreReadFailed is returned when a database file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read database")

	// ErrStoreUnmarshalFailed is returned when a database file cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to decode database")

	// ErrStoreMarshalFailed is returned when a database cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to encode database")

	// ErrStoreWriteFailed is returned when a database file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write database")

	// ErrWatchFailed is returned when the conversion source cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch conversion source")
)
