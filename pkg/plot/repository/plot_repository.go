package repository

import "agrisense/entities"

type PlotRepository interface {
	Create(p *entities.FieldPlot) error
	FindByID(id uint) (*entities.FieldPlot, error)
	List() ([]entities.FieldPlot, error)
}
