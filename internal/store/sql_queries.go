package store

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createCustomer = `INSERT INTO customers (name, username, email, address, phone, website, company)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id;`

	findCustomerByID = `SELECT id, name, username, email, address, phone, website, company
    FROM customers
    WHERE id = $1;`

	deleteCustomer = `DELETE FROM customers WHERE id = $1;`

	createProduct = `INSERT INTO products (title, price, description, category, image, rating_rate, rating_count)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, created_at, updated_at;`

	findProductByID = `SELECT id, title, price, description, category, image, rating_rate, rating_count, created_at, updated_at
    FROM products
    WHERE id = $1;`

	deleteProduct = `DELETE FROM products WHERE id = $1;`

	createPost = `INSERT INTO posts (customer_id, title, body)
    VALUES ($1, $2, $3)
    RETURNING id;`

	findPostByID = `SELECT id, customer_id, title, body
    FROM posts
    WHERE id = $1;`

	deletePost = `DELETE FROM posts WHERE id = $1;`
)
