package postgres

import "gorm.io/gorm"

// paginate aplica limit/offset com os mesmos defaults em todos os repositories.
// Página começa em 1; page size default 20, máximo 100. Page size negativo
// desliga a paginação (consultas internas de agregação).
func paginate(query *gorm.DB, page, pageSize int) *gorm.DB {
	if pageSize < 0 {
		return query
	}

	if page < 1 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	return query.Limit(pageSize).Offset(offset)
}
