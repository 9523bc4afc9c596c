package authRepository

const (
	queryCreateUser = `
INSERT INTO users (username, email, password)
VALUES (:username, :email, :password)
RETURNING id`

	queryGetByCredentials = `
SELECT id, username, email, password
FROM users
    WHERE username = :username AND password = :password
LIMIT 1`

	queryGetByID = `
SELECT id, username, email, password
FROM users
    WHERE id = :id`
)
