package service

import (
	"stundenmanager/internal/database/client"
	fluentdRepo "stundenmanager/internal/database/fluentd/repository"
	mongoRepo "stundenmanager/internal/database/mongodb/repository"
	redisRepo "stundenmanager/internal/database/redis/repository"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewPipeline,
	NewUserService,
	NewSessionService,
	NewShiftService,
	NewAbsenceService,
	NewIdentityService,
	NewHealthService,
	wire.Bind(new(StoreProbe), new(*client.MongoClient)),
	wire.Bind(new(IdentityProvider), new(*mongoRepo.IdentityRepository)),
	wire.Bind(new(UserStore), new(*mongoRepo.UserRepository)),
	wire.Bind(new(SessionStore), new(*mongoRepo.SessionRepository)),
	wire.Bind(new(ShiftStore), new(*mongoRepo.ShiftRepository)),
	wire.Bind(new(ScopeLocker), new(*redisRepo.ScopeLockRepository)),
	wire.Bind(new(AuditLogger), new(*fluentdRepo.LogRepository)),
)
