package dto

// PageQuery 列表查询参数，绑定自 URL query
type PageQuery struct {
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size,default=10" binding:"omitempty,min=1,max=100"`
	SortField string `form:"sort_field"`
	Ascending bool   `form:"ascending,default=true"`
}

// PageResult 统一分页出参：total 是全表计数，不受页窗口影响
type PageResult struct {
	Total    int64 `json:"total"`
	Data     any   `json:"data"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
