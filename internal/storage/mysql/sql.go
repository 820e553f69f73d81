package mysql

// -----------------------------------------------------------------------------
// WRITE STATEMENTS
// -----------------------------------------------------------------------------

// Cities go with their country through ON DELETE CASCADE.
const deleteCountriesSQL = `DELETE FROM countries`

const deletePlacesSQL = `DELETE FROM places`

const insertCountriesPrefix = "INSERT INTO countries\n  (position, name)\nVALUES "

const insertCitiesPrefix = "INSERT INTO cities\n  (country_position, position, name, description, image_url)\nVALUES "

const insertPlacesPrefix = "INSERT INTO places\n  (category, position, name, description, image_url)\nVALUES "

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Countries with their cities in document order. Countries without cities
// come back once with NULL city columns.
const listCountriesSQL = `
SELECT
  c.position,
  c.name,
  ci.name,
  ci.description,
  ci.image_url
FROM countries c
LEFT JOIN cities ci
  ON ci.country_position = c.position
ORDER BY c.position, ci.position
`

const listPlacesSQL = `
SELECT name, description, image_url
FROM places
WHERE category = ?
ORDER BY position
`
