package repository

import (
	adminRepo "servit/database/repository/admin"
	bookingRepo "servit/database/repository/booking"
	catalogRepo "servit/database/repository/catalog"
	partnerRepo "servit/database/repository/partner"
	userRepo "servit/database/repository/user"
)

// Re-export the repository interfaces and constructors.
type AdminRepository = adminRepo.AdminRepository

var NewMongoAdminRepo = adminRepo.NewMongoAdminRepo

type CategoryRepository = catalogRepo.CategoryRepository

var NewMongoCategoryRepo = catalogRepo.NewMongoCategoryRepo

type ServiceRepository = catalogRepo.ServiceRepository

var NewMongoServiceRepo = catalogRepo.NewMongoServiceRepo

type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo

type PartnerRepository = partnerRepo.PartnerRepository

var NewMongoPartnerRepo = partnerRepo.NewMongoPartnerRepo

type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo
