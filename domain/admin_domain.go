package domain

var (
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"
	MessageFailedGetDashboardStats  = "failed to retrieve dashboard statistics"
)

type (
	PopularItemResponse struct {
		MenuItemID    string `json:"menu_item_id"`
		Name          string `json:"name"`
		TotalQuantity int64  `json:"total_quantity"`
	}

	DashboardStatsResponse struct {
		TotalOrders    int64                 `json:"total_orders"`
		TodayOrders    int64                 `json:"today_orders"`
		TotalRevenue   float64               `json:"total_revenue"`
		TodayRevenue   float64               `json:"today_revenue"`
		TotalUsers     int64                 `json:"total_users"`
		TotalMenuItems int64                 `json:"total_menu_items"`
		PendingOrders  int64                 `json:"pending_orders"`
		PopularItems   []PopularItemResponse `json:"popular_items"`
	}
)
