package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			title,
			body,
			image,
			created_date,
			writer_id,
			category_id
		) VALUES (
			:title,
			:body,
			:image,
			:created_date,
			:writer_id,
			:category_id
		)
		RETURNING id
	`

	selectBlogView = `
		SELECT
			b.id,
			b.title,
			b.body,
			b.image,
			b.created_date,
			b.writer_id,
			b.category_id,
			COALESCE(u.username, '') AS writer_name,
			COALESCE(c.name, '') AS category_name
		FROM blogs b
		LEFT JOIN users u ON u.id = b.writer_id
		LEFT JOIN categories c ON c.id = b.category_id
	`

	queryGetBlogByID = selectBlogView + `
		WHERE b.id = :id
	`

	queryGetAllBlogs = selectBlogView + `
		ORDER BY b.id ASC
	`

	queryGetBlogsByCategory = selectBlogView + `
		WHERE b.category_id = :category_id
		ORDER BY b.id ASC
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			body = :body
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryCreateCategory = `
		INSERT INTO categories (
			name,
			writer_id
		) VALUES (
			:name,
			:writer_id
		)
		RETURNING id
	`

	queryGetAllCategories = `
		SELECT
			id,
			name,
			writer_id
		FROM categories
		ORDER BY id ASC
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
	`

	queryCreateComment = `
		INSERT INTO comments (
			comment,
			writer_id,
			blog_id
		) VALUES (
			:comment,
			:writer_id,
			:blog_id
		)
		RETURNING id
	`

	queryGetCommentByID = `
		SELECT
			id,
			comment,
			writer_id,
			blog_id
		FROM comments
		WHERE id = :id
	`

	queryGetCommentsByBlogID = `
		SELECT
			cm.id,
			cm.comment,
			cm.writer_id,
			cm.blog_id,
			COALESCE(u.username, '') AS writer_name
		FROM comments cm
		LEFT JOIN users u ON u.id = cm.writer_id
		WHERE cm.blog_id = :blog_id
		ORDER BY cm.id ASC
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`
)
