package cmd

import (
	"ticketing/internal/adapters/out/postgres"
	"ticketing/internal/core/application/usecases/commands"
	"ticketing/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireTransactionsCommandHandler() commands.ExpireTransactionsCommandHandler {
	var f commands.TransactionUoWFactory = FuncTransactionUoWFactory(func() commands.TransactionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireTransactionsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderByInquiryKeyQueryHandler() queries.GetOrderByInquiryKeyQueryHandler {
	return queries.NewGetOrderByInquiryKeyQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncTransactionUoWFactory func() commands.TransactionUoW

func (f FuncTransactionUoWFactory) Create() commands.TransactionUoW {
	return f()
}
