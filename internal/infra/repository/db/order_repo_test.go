package db

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/stadiumorder/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	orderRepo   *OrderRepo
	catalogRepo *CatalogRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *OrderRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_stadiumorder", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.orderRepo = NewOrderRepo(dbDao)
	suite.catalogRepo = NewCatalogRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *OrderRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM sections")
}

// TearDownSuite 在測試套件結束後執行
func (suite *OrderRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

// 創建測試用的商品與區域
func (suite *OrderRepoTestSuite) createTestCatalog() (*model.Product, *model.Section) {
	product := &model.Product{
		Name:        "Stadium Burger",
		Description: "Classic beef burger",
		Price:       decimal.New(850, -2),
		Category:    model.CategoryFood,
		ImageUrl:    "https://example.com/burger.png",
		IsAvailable: true,
	}
	require.NoError(suite.T(), suite.catalogRepo.CreateProduct(context.Background(), product))

	section := &model.Section{
		Name:                "Section A (Home)",
		IsDeliveryAvailable: true,
	}
	require.NoError(suite.T(), suite.catalogRepo.CreateSection(context.Background(), section))

	return product, section
}

func (suite *OrderRepoTestSuite) newTestOrder(product *model.Product, orderNumber string) *model.Order {
	return &model.Order{
		OrderNumber: orderNumber,
		Status:      model.OrderStatusPending,
		Type:        model.OrderTypePickup,
		DeliveryFee: decimal.Zero,
		TotalAmount: decimal.New(1700, -2),
		OrderItems: []model.OrderItem{
			{
				ProductID:   product.ProductID,
				Quantity:    2,
				PriceAtTime: product.Price,
			},
		},
	}
}

func (suite *OrderRepoTestSuite) TestCreateOrder() {
	product, _ := suite.createTestCatalog()
	order := suite.newTestOrder(product, "AAA111")

	err := suite.orderRepo.CreateOrder(context.Background(), order)

	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), order.OrderID)
	require.False(suite.T(), order.CreatedAt.IsZero())
	// 項目跟著交易一起入庫
	require.NotZero(suite.T(), order.OrderItems[0].OrderItemID)
	require.Equal(suite.T(), order.OrderID, order.OrderItems[0].OrderID)
}

func (suite *OrderRepoTestSuite) TestCreateOrder_DuplicatedOrderNumber() {
	product, _ := suite.createTestCatalog()

	first := suite.newTestOrder(product, "AAA111")
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(context.Background(), first))

	second := suite.newTestOrder(product, "AAA111")
	err := suite.orderRepo.CreateOrder(context.Background(), second)

	require.ErrorIs(suite.T(), err, ErrOrderNumberDuplicated)

	// 整張訂單不留下任何資料
	var itemCount int64
	suite.db.Model(&model.OrderItem{}).Count(&itemCount)
	require.Equal(suite.T(), int64(1), itemCount)
}

func (suite *OrderRepoTestSuite) TestGetOrderByID() {
	product, section := suite.createTestCatalog()
	order := suite.newTestOrder(product, "AAA111")
	order.Type = model.OrderTypeDelivery
	order.SectionID = &section.SectionID
	row, seat := "12", "5"
	order.Row = &row
	order.Seat = &seat
	order.DeliveryFee = decimal.New(250, -2)
	order.TotalAmount = decimal.New(1950, -2)
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(context.Background(), order))

	found, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "AAA111", found.OrderNumber)
	require.True(suite.T(), decimal.New(1950, -2).Equal(found.TotalAmount))

	// read model: 項目帶商品, 訂單帶區域
	require.Len(suite.T(), found.OrderItems, 1)
	require.NotNil(suite.T(), found.OrderItems[0].Product)
	require.Equal(suite.T(), "Stadium Burger", found.OrderItems[0].Product.Name)
	require.True(suite.T(), decimal.New(850, -2).Equal(found.OrderItems[0].PriceAtTime))
	require.NotNil(suite.T(), found.Section)
	require.Equal(suite.T(), "Section A (Home)", found.Section.Name)
}

func (suite *OrderRepoTestSuite) TestGetOrderByID_NotFound() {
	found, err := suite.orderRepo.GetOrderByID(context.Background(), 999)

	require.ErrorIs(suite.T(), err, ErrOrderNotFound)
	require.Nil(suite.T(), found)
}

// 既有訂單的快照價不受商品改價影響
func (suite *OrderRepoTestSuite) TestPriceSnapshotSurvivesPriceChange() {
	product, _ := suite.createTestCatalog()
	order := suite.newTestOrder(product, "AAA111")
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(context.Background(), order))

	product.Price = decimal.New(1250, -2)
	require.NoError(suite.T(), suite.catalogRepo.UpdateProduct(context.Background(), product))

	found, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)
	require.True(suite.T(), decimal.New(850, -2).Equal(found.OrderItems[0].PriceAtTime))
	require.True(suite.T(), decimal.New(1250, -2).Equal(found.OrderItems[0].Product.Price))
}

func (suite *OrderRepoTestSuite) TestGetAllOrders() {
	product, _ := suite.createTestCatalog()

	numbers := []string{"AAA111", "BBB222", "CCC333"}
	var ids []uint
	for _, n := range numbers {
		order := suite.newTestOrder(product, n)
		require.NoError(suite.T(), suite.orderRepo.CreateOrder(context.Background(), order))
		ids = append(ids, order.OrderID)
	}
	require.NoError(suite.T(), suite.orderRepo.UpdateOrderStatus(context.Background(), ids[0], model.OrderStatusCompleted))

	// 全量, 新到舊
	all, err := suite.orderRepo.GetAllOrders(context.Background(), "")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), all, 3)
	require.Equal(suite.T(), ids[2], all[0].OrderID)
	require.Equal(suite.T(), ids[0], all[2].OrderID)

	// 狀態過濾
	pending, err := suite.orderRepo.GetAllOrders(context.Background(), model.OrderStatusPending)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), pending, 2)
}

func (suite *OrderRepoTestSuite) TestUpdateOrderStatus() {
	product, _ := suite.createTestCatalog()
	order := suite.newTestOrder(product, "AAA111")
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(context.Background(), order))

	err := suite.orderRepo.UpdateOrderStatus(context.Background(), order.OrderID, model.OrderStatusPreparing)
	require.NoError(suite.T(), err)

	found, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusPreparing, found.Status)
	// 金額不動
	require.True(suite.T(), decimal.New(1700, -2).Equal(found.TotalAmount))
}

func (suite *OrderRepoTestSuite) TestUpdateOrderStatus_NotFound() {
	err := suite.orderRepo.UpdateOrderStatus(context.Background(), 999, model.OrderStatusPreparing)

	require.ErrorIs(suite.T(), err, ErrOrderNotFound)
}

// 執行測試套件
func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}
