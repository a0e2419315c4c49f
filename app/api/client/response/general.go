package response

// GeneralResponse is the success envelope of every endpoint.
type GeneralResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func ToSuccessResponse[T any](code int, data T) GeneralResponse[T] {
	return GeneralResponse[T]{
		Data:    data,
		Message: "success",
		Code:    code,
	}
}

// PaginatedData wraps one page of rows together with paging bookkeeping.
// It is carried inside the "data" field of GeneralResponse.
type PaginatedData[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalData  int `json:"total_data"`
}

func ToPaginatedData[T any](data []T, page, pageSize, totalPages, totalData int) PaginatedData[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedData[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalData:  totalData,
	}
}

// ErrorModel is the error envelope. Status is a coarse category, not an
// HTTP status code.
type ErrorModel struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
