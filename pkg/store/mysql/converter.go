package mysql

import (
	domain "rigforge/internal/model"
	"rigforge/pkg/store/mysql/model"
)

// ToPartDomain converts MySQL Part to domain Part model
func ToPartDomain(mysqlPart *model.Part) *domain.Part {
	if mysqlPart == nil {
		return nil
	}

	return &domain.Part{
		ID:           mysqlPart.PartID,
		Name:         mysqlPart.Name,
		Manufacturer: mysqlPart.Manufacturer,
		Price:        mysqlPart.Price,
		Category:     domain.PartCategory(mysqlPart.Category),
		Specs:        domain.PartSpecs(mysqlPart.Specs),
	}
}

// FromPartDomain converts domain Part model to MySQL Part
func FromPartDomain(domainPart *domain.Part) *model.Part {
	if domainPart == nil {
		return nil
	}

	return &model.Part{
		PartID:       domainPart.ID,
		Name:         domainPart.Name,
		Manufacturer: domainPart.Manufacturer,
		Price:        domainPart.Price,
		Category:     string(domainPart.Category),
		Specs:        model.JSONSpecs(domainPart.Specs),
		Status:       "active",
	}
}

// ToConfigurationDomain converts a stored build snapshot to the domain model
func ToConfigurationDomain(mysqlBuild *model.Build) *domain.Configuration {
	if mysqlBuild == nil {
		return nil
	}
	cfg := domain.Configuration(mysqlBuild.Config)
	cfg.ID = mysqlBuild.BuildID
	cfg.Name = mysqlBuild.Name
	return &cfg
}

// FromConfigurationDomain converts a domain configuration to a stored build
func FromConfigurationDomain(cfg *domain.Configuration) *model.Build {
	if cfg == nil {
		return nil
	}
	return &model.Build{
		BuildID: cfg.ID,
		Name:    cfg.Name,
		Config:  model.JSONConfiguration(*cfg),
		Status:  "active",
	}
}
