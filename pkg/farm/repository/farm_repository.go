package repository

import "agrisense/entities"

type FarmRepository interface {
	Create(f *entities.FarmProfile) error
	List() ([]entities.FarmProfile, error)
}
