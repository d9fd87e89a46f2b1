package weather

import "agroportal/internal/domain/weather"

type getInput struct {
	Location string `query:"location" doc:"Населенный пункт, по умолчанию из профиля"`
}

type getOutput struct {
	Body weather.Report
}
