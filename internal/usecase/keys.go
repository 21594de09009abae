package usecase

// Ключи кэша. Схема плоская, сегменты разделяются двоеточием.
func cartKey(userID string) string { return "cart:" + userID }

func wishlistKey(userID string) string { return "wishlist:" + userID }

func productKey(productID string) string { return "product:" + productID }

func orderKey(orderID string) string { return "order:" + orderID }

func inventoryKey(productID string) string { return "inventory:" + productID }
